// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// postThreshold is the ID count above which EFetch is sent as a POST.
// NCBI asks for POST when the id list is long.
const postThreshold = 200

// FetchDetails returns the raw EFetch XML for ids. An empty list returns
// an empty document without a network call.
func (c *Client) FetchDetails(ctx context.Context, ids []string) (string, error) {
	if len(ids) == 0 {
		return "", nil
	}

	params := c.params()
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "xml")

	endpoint := c.baseURL + "efetch.fcgi"
	var (
		resp *http.Response
		err  error
	)
	if len(ids) > postThreshold {
		resp, err = c.http.PostForm(ctx, endpoint, params, "application/xml")
	} else {
		resp, err = c.http.Get(ctx, endpoint+"?"+params.Encode(), "application/xml")
	}
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading EFetch response: %w", err)
	}
	return string(body), nil
}
