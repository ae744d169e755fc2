// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crossref looks up contact emails for a DOI through the Crossref
// works API.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// crossrefAPIBase is the Crossref works endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossrefAPIBase = "https://api.crossref.org/works/"

const defaultRate = 5

// Client queries Crossref for work metadata.
type Client struct {
	http    *httputil.Client
	baseURL string
	mailto  string
}

// NewClient builds a Client from configuration. hc may be nil to use
// http.DefaultClient.
func NewClient(hc httputil.Doer, cfg types.CrossrefConfig, httpCfg types.HTTPConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRate
	}
	hcl := httputil.NewClient("Crossref", hc, rps)
	hcl.UserAgent = httpCfg.UserAgent
	hcl.MaxRetries = httpCfg.MaxRetries

	c := &Client{http: hcl, baseURL: cfg.BaseURL, mailto: cfg.Mailto}
	if c.baseURL == "" {
		c.baseURL = crossrefAPIBase
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	return c
}

// LookupEmail returns the first author email Crossref lists for doi.
// An empty DOI returns "" without a network call, and so does a DOI that
// Crossref does not know (HTTP 404). Other failures are returned as errors.
func (c *Client) LookupEmail(ctx context.Context, doi string) (string, error) {
	doi = NormalizeDOI(doi)
	if doi == "" {
		return "", nil
	}

	apiURL := c.baseURL + escapeDOI(doi)
	if c.mailto != "" {
		apiURL += "?" + url.Values{"mailto": {c.mailto}}.Encode()
	}

	resp, err := c.http.Get(ctx, apiURL, "application/json")
	if err != nil {
		if httputil.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	defer resp.Body.Close()

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("parsing Crossref response: %w", err)
	}

	for _, a := range cr.Message.Author {
		if email := strings.TrimSpace(a.Email); email != "" {
			return email, nil
		}
	}
	return "", nil
}

// NormalizeDOI strips resolver prefixes such as "https://doi.org/" and
// "doi:" and surrounding whitespace.
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, prefix := range []string{"https://doi.org/", "http://doi.org/", "https://dx.doi.org/", "http://dx.doi.org/", "doi:"} {
		if len(doi) >= len(prefix) && strings.EqualFold(doi[:len(prefix)], prefix) {
			doi = doi[len(prefix):]
			break
		}
	}
	return strings.TrimSpace(doi)
}

// escapeDOI path-escapes each segment of the DOI but keeps the slashes,
// which Crossref accepts unescaped.
func escapeDOI(doi string) string {
	parts := strings.Split(doi, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// Crossref API JSON structures.
type crossrefResponse struct {
	Status  string       `json:"status"`
	Message crossrefWork `json:"message"`
}

type crossrefWork struct {
	DOI    string           `json:"DOI"`
	Author []crossrefAuthor `json:"author"`
}

type crossrefAuthor struct {
	Given    string `json:"given"`
	Family   string `json:"family"`
	Email    string `json:"email"`
	Sequence string `json:"sequence"`
}
