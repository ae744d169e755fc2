// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Header is the column row written before any paper.
var Header = []string{"id", "title", "date", "authors", "affiliations", "email"}

const listSep = "; "

// WriteCSV writes a header row and one row per paper. delim is the field
// separator; zero means a comma.
func WriteCSV(w io.Writer, papers []types.Paper, delim rune) error {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range papers {
		row := []string{
			p.ID,
			p.Title,
			p.PublicationDate,
			joinList(p.Authors),
			joinList(p.Affiliations),
			p.Email,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing paper %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses rows written by WriteCSV. The header row must match.
func ReadCSV(r io.Reader, delim rune) ([]types.Paper, error) {
	cr := csv.NewReader(r)
	if delim != 0 {
		cr.Comma = delim
	}
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if strings.Join(header, ",") != strings.Join(Header, ",") {
		return nil, fmt.Errorf("unexpected header %q", header)
	}

	var papers []types.Paper
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return papers, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		p := types.Paper{
			ID:              row[0],
			Title:           row[1],
			PublicationDate: row[2],
			Authors:         splitList(row[3]),
			Affiliations:    splitList(row[4]),
			Email:           row[5],
		}
		papers = append(papers, p)
	}
}

var listEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`)

// joinList joins items with "; ", escaping any ';' or '\' inside an item
// so splitList can recover the items exactly.
func joinList(items []string) string {
	escaped := make([]string, len(items))
	for i, it := range items {
		escaped[i] = listEscaper.Replace(it)
	}
	return strings.Join(escaped, listSep)
}

// splitList reverses joinList. An empty field is an empty list.
func splitList(field string) []string {
	if field == "" {
		return nil
	}
	var (
		items []string
		cur   strings.Builder
	)
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '\\' && i+1 < len(field):
			i++
			cur.WriteByte(field[i])
		case c == ';':
			items = append(items, cur.String())
			cur.Reset()
			if i+1 < len(field) && field[i+1] == ' ' {
				i++
			}
		default:
			cur.WriteByte(c)
		}
	}
	return append(items, cur.String())
}
