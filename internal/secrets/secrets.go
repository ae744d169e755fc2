// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads credentials from a directory of plain-text files.
// The file name is the key and the trimmed contents are the value.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Known key files.
const (
	// NCBIAPIKey raises the E-utilities limit from 3 to 10 requests per second.
	NCBIAPIKey = "ncbi-api-key"
	// ContactEmail is sent to NCBI as "email" and to Crossref as "mailto".
	ContactEmail = "contact-email"
)

// Store holds loaded secrets.
type Store map[string]string

// Get returns the value for key, or "" when it was not loaded.
func (s Store) Get(key string) string {
	return s[key]
}

// Keys returns the loaded key names in no particular order.
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error and yields an empty Store. Unreadable files are reported on
// warn and skipped.
func Load(dir string, warn io.Writer) (Store, error) {
	if warn == nil {
		warn = io.Discard
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Store)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			s[name] = v
		}
	}
	return s, nil
}
