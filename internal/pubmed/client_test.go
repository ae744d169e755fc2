// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

func eutilsTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	c := NewClient(ts.Client(), types.PubMedConfig{
		BaseURL:           ts.URL,
		Email:             "dev@example.org",
		RequestsPerSecond: 1000,
	}, types.HTTPConfig{UserAgent: "get-papers-list/test"})
	return ts, c
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(nil, types.PubMedConfig{}, types.HTTPConfig{})
	assert.Equal(t, eutilsBase, c.baseURL)
	assert.Equal(t, defaultTool, c.tool)
	assert.Equal(t, defaultMaxResults, c.maxResults)
	require.NotNil(t, c.http.Limiter)
	assert.InDelta(t, 3.0, float64(c.http.Limiter.Limit()), 0.001)

	withKey := NewClient(nil, types.PubMedConfig{APIKey: "k", BaseURL: "http://x/eutils"}, types.HTTPConfig{})
	assert.Equal(t, "http://x/eutils/", withKey.baseURL)
	assert.InDelta(t, 10.0, float64(withKey.http.Limiter.Limit()), 0.001)
}

func TestSearch(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	_, c := eutilsTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		fmt.Fprint(w, sampleESearchXML)
	})

	res, err := c.Search(context.Background(), "COVID-19 Vaccine", 2)
	require.NoError(t, err)

	assert.Equal(t, "/esearch.fcgi", gotPath)
	assert.Equal(t, "pubmed", gotQuery["db"])
	assert.Equal(t, "COVID-19 Vaccine", gotQuery["term"])
	assert.Equal(t, "2", gotQuery["retmax"])
	assert.Equal(t, "xml", gotQuery["retmode"])
	assert.Equal(t, "dev@example.org", gotQuery["email"])
	assert.Equal(t, defaultTool, gotQuery["tool"])
	_, hasKey := gotQuery["api_key"]
	assert.False(t, hasKey)

	assert.Equal(t, 1234, res.Count)
	assert.Equal(t, []string{"1001", "1002"}, res.IDs)
	assert.Contains(t, res.QueryTranslation, "covid 19 vaccines")
}

func TestFetchIDs_DefaultMax(t *testing.T) {
	var retmax string
	_, c := eutilsTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		retmax = r.URL.Query().Get("retmax")
		fmt.Fprint(w, sampleESearchXML)
	})

	ids, err := c.FetchIDs(context.Background(), "vaccine", 0)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(defaultMaxResults), retmax)
	assert.Equal(t, []string{"1001", "1002"}, ids)
}

func TestFetchIDs_NoMatches(t *testing.T) {
	_, c := eutilsTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, emptyESearchXML)
	})

	ids, err := c.FetchIDs(context.Background(), "zzzxqq", 10)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFetchIDs_BlankQuerySkipsNetwork(t *testing.T) {
	var calls int32
	_, c := eutilsTestServer(t, func(http.ResponseWriter, *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	ids, err := c.FetchIDs(context.Background(), "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestFetchIDs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"http error", http.StatusInternalServerError, "boom", "PubMed API returned HTTP 500: boom"},
		{"esearch error element", http.StatusOK, errorESearchXML, "ESearch error: Invalid query"},
		{"garbage body", http.StatusOK, "<eSearchResult><Count>", "parsing ESearch response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := eutilsTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})
			_, err := c.FetchIDs(context.Background(), "q", 5)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFetchIDs_StatusErrorIsTyped(t *testing.T) {
	_, c := eutilsTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := c.FetchIDs(context.Background(), "q", 5)
	assert.Equal(t, http.StatusTooManyRequests, httputil.StatusCode(err))
}

func TestFetchDetails(t *testing.T) {
	var gotMethod, gotIDs string
	_, c := eutilsTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.Equal(t, "/efetch.fcgi", r.URL.Path)
		gotIDs = r.URL.Query().Get("id")
		fmt.Fprint(w, sampleEFetchXML)
	})

	doc, err := c.FetchDetails(context.Background(), []string{"1001", "1002"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "1001,1002", gotIDs)
	assert.Equal(t, sampleEFetchXML, doc)
}

func TestFetchDetails_EmptyIDsSkipsNetwork(t *testing.T) {
	var calls int32
	_, c := eutilsTestServer(t, func(http.ResponseWriter, *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	doc, err := c.FetchDetails(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, doc)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestFetchDetails_LongListUsesPost(t *testing.T) {
	var gotMethod string
	var gotCount int
	_, c := eutilsTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, r.ParseForm())
		gotCount = len(strings.Split(r.PostForm.Get("id"), ","))
		fmt.Fprint(w, "<PubmedArticleSet/>")
	})

	ids := make([]string, postThreshold+1)
	for i := range ids {
		ids[i] = strconv.Itoa(i + 1)
	}
	_, err := c.FetchDetails(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, postThreshold+1, gotCount)
}

func TestFetchDetails_HTTPError(t *testing.T) {
	_, c := eutilsTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.FetchDetails(context.Background(), []string{"1"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, httputil.StatusCode(err))
}

func TestSearchThenParse_AtMostNRecords(t *testing.T) {
	_, c := eutilsTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "esearch.fcgi") {
			fmt.Fprint(w, sampleESearchXML)
			return
		}
		fmt.Fprint(w, sampleEFetchXML)
	})

	ids, err := c.FetchIDs(context.Background(), "COVID-19 Vaccine", 2)
	require.NoError(t, err)
	doc, err := c.FetchDetails(context.Background(), ids)
	require.NoError(t, err)
	res := ParseArticles(doc)
	assert.LessOrEqual(t, len(res.Papers), len(ids))
}
