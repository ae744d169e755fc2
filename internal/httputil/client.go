// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"
)

// Client sends paced requests to one remote API. Each request waits on the
// limiter, is sent through DoWithRetry, and non-2xx responses come back as
// a *StatusError.
type Client struct {
	// Service names the API in error messages (e.g. "PubMed ESearch").
	Service string

	HTTP       Doer
	Limiter    *rate.Limiter
	UserAgent  string
	MaxRetries int
}

// NewClient returns a Client for service paced at rps requests per second.
// A non-positive rps disables pacing.
func NewClient(service string, hc Doer, rps float64) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	c := &Client{Service: service, HTTP: hc}
	if rps > 0 {
		c.Limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return c
}

// Get issues a GET request for rawURL.
func (c *Client) Get(ctx context.Context, rawURL string, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return c.do(ctx, req)
}

// PostForm issues a form-encoded POST request for rawURL.
func (c *Client) PostForm(ctx context.Context, rawURL string, form url.Values, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return c.do(ctx, req)
}

func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: waiting for rate limiter: %w", c.Service, err)
		}
	}

	resp, err := DoWithRetry(ctx, c.HTTP, req, c.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("%s API request: %w", c.Service, err)
	}
	if err := CheckStatus(resp, c.Service); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}
