// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders papers to the console or to a file in delimited,
// JSON, or YAML form.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

const (
	noPapers     = "No papers found."
	missingEmail = "N/A"
)

var rule = strings.Repeat("=", 80)

// WriteConsole prints a human-readable listing of papers to w, one block
// per paper separated by a rule.
func WriteConsole(w io.Writer, papers []types.Paper) error {
	if len(papers) == 0 {
		_, err := fmt.Fprintln(w, noPapers)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d paper(s)\n", len(papers))
	for _, p := range papers {
		email := p.Email
		if email == "" {
			email = missingEmail
		}
		b.WriteString(rule + "\n")
		fmt.Fprintf(&b, "PubMed ID: %s\n", p.ID)
		fmt.Fprintf(&b, "Title: %s\n", p.Title)
		fmt.Fprintf(&b, "Publication Date: %s\n", p.PublicationDate)
		fmt.Fprintf(&b, "Authors: %s\n", strings.Join(p.Authors, listSep))
		fmt.Fprintf(&b, "Affiliations: %s\n", strings.Join(p.Affiliations, listSep))
		fmt.Fprintf(&b, "Corresponding Author Email: %s\n", email)
	}
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
