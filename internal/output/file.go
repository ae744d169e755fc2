// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// ParseFormat validates a --format value. Empty means CSV.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return types.FormatCSV, nil
	case types.FormatCSV, types.FormatJSON, types.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want csv, json, or yaml)", s)
	}
}

// Render writes papers to w in the given format. For CSV, a path ending in
// .tsv selects tab as the delimiter.
func Render(w io.Writer, papers []types.Paper, format types.OutputFormat, path string) error {
	switch format {
	case types.FormatJSON:
		return WriteJSON(w, papers)
	case types.FormatYAML:
		return WriteYAML(w, papers)
	case types.FormatCSV, "":
		return WriteCSV(w, papers, Delimiter(path))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Delimiter returns the field separator implied by a file name.
func Delimiter(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

// WriteFile renders papers into path. The output goes to a temporary file in
// the same directory and is renamed into place, so a failed write leaves any
// existing file untouched.
func WriteFile(path string, papers []types.Paper, format types.OutputFormat) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".get-papers-list-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	bw := bufio.NewWriter(tmpFile)
	renderErr := Render(bw, papers, format, path)
	if renderErr == nil {
		renderErr = bw.Flush()
	}
	closeErr := tmpFile.Close()
	if renderErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, renderErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
