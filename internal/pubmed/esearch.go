// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// SearchResult is the part of an ESearch response the pipeline uses.
type SearchResult struct {
	// Count is the total number of matches, which may exceed len(IDs).
	Count int

	// IDs are the matching PMIDs in relevance order, at most retmax of them.
	IDs []string

	// QueryTranslation is how PubMed interpreted the query.
	QueryTranslation string
}

// Search runs an ESearch query. A blank query returns an empty result
// without a network call. max <= 0 uses the configured default.
func (c *Client) Search(ctx context.Context, query string, max int) (SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResult{}, nil
	}
	if max <= 0 {
		max = c.maxResults
	}

	params := c.params()
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(max))
	params.Set("retmode", "xml")

	resp, err := c.http.Get(ctx, c.baseURL+"esearch.fcgi?"+params.Encode(), "application/xml")
	if err != nil {
		return SearchResult{}, err
	}
	defer resp.Body.Close()

	var es eSearchResult
	if err := xml.NewDecoder(resp.Body).Decode(&es); err != nil {
		return SearchResult{}, fmt.Errorf("parsing ESearch response: %w", err)
	}
	if msg := strings.TrimSpace(es.Error); msg != "" {
		return SearchResult{}, fmt.Errorf("ESearch error: %s", msg)
	}

	out := SearchResult{QueryTranslation: es.QueryTranslation}
	out.Count, _ = strconv.Atoi(strings.TrimSpace(es.Count))
	for _, id := range es.IDs {
		if id = strings.TrimSpace(id); id != "" {
			out.IDs = append(out.IDs, id)
		}
	}
	return out, nil
}

// FetchIDs returns the PMIDs matching query, at most max of them.
func (c *Client) FetchIDs(ctx context.Context, query string, max int) ([]string, error) {
	res, err := c.Search(ctx, query, max)
	if err != nil {
		return nil, err
	}
	return res.IDs, nil
}

// ESearch XML structures.
type eSearchResult struct {
	Count            string   `xml:"Count"`
	IDs              []string `xml:"IdList>Id"`
	QueryTranslation string   `xml:"QueryTranslation"`
	Error            string   `xml:"ERROR"`
}
