// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed fetches and parses PubMed records through the NCBI
// E-utilities API: ESearch turns a query into PMIDs, EFetch returns the
// full records as XML, and ParseArticles extracts Paper records from it.
package pubmed

import (
	"net/url"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// eutilsBase is the E-utilities root. Declared as a var so tests can
// substitute an httptest server.
var eutilsBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/"

const (
	defaultMaxResults = 20
	defaultTool       = "get-papers-list"
)

// Client talks to ESearch and EFetch.
type Client struct {
	http *httputil.Client

	baseURL    string
	apiKey     string
	email      string
	tool       string
	maxResults int
}

// NewClient builds a Client from configuration. hc may be nil to use
// http.DefaultClient. Requests are paced at cfg.Rate().
func NewClient(hc httputil.Doer, cfg types.PubMedConfig, httpCfg types.HTTPConfig) *Client {
	hcl := httputil.NewClient("PubMed", hc, cfg.Rate())
	hcl.UserAgent = httpCfg.UserAgent
	hcl.MaxRetries = httpCfg.MaxRetries

	c := &Client{
		http:       hcl,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		email:      cfg.Email,
		tool:       cfg.Tool,
		maxResults: cfg.MaxResults,
	}
	if c.baseURL == "" {
		c.baseURL = eutilsBase
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	if c.tool == "" {
		c.tool = defaultTool
	}
	if c.maxResults <= 0 {
		c.maxResults = defaultMaxResults
	}
	return c
}

// params returns the parameters common to every E-utilities call.
func (c *Client) params() url.Values {
	v := url.Values{"db": {"pubmed"}, "tool": {c.tool}}
	if c.apiKey != "" {
		v.Set("api_key", c.apiKey)
	}
	if c.email != "" {
		v.Set("email", c.email)
	}
	return v
}
