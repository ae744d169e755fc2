// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one query end to end: PubMed search, detail fetch,
// record parsing, and email enrichment. Every stage runs sequentially.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/get-papers-list/internal/crossref"
	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/internal/pubmed"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// IDFetcher turns a query into record identifiers.
type IDFetcher interface {
	FetchIDs(ctx context.Context, query string, max int) ([]string, error)
}

// DetailFetcher returns the raw record document for identifiers.
type DetailFetcher interface {
	FetchDetails(ctx context.Context, ids []string) (string, error)
}

// EmailLookup finds a contact email for a DOI. An empty result with a nil
// error means the service had no email.
type EmailLookup interface {
	LookupEmail(ctx context.Context, doi string) (string, error)
}

// Pipeline wires the stages together. Emails may be nil to disable
// enrichment. Log receives warnings; Trace receives per-stage sizes and
// is io.Discard unless debugging.
type Pipeline struct {
	IDs        IDFetcher
	Details    DetailFetcher
	Emails     EmailLookup
	MaxResults int

	Log   io.Writer
	Trace io.Writer
}

// Result is the outcome of one run.
type Result struct {
	IDs     []string
	Papers  []types.Paper
	Skipped []pubmed.SkippedArticle

	// Lookups counts Crossref requests issued; Resolved counts those that
	// produced an email.
	Lookups  int
	Resolved int
}

// New builds a Pipeline backed by PubMed and, when enabled, Crossref.
func New(cfg types.PipelineConfig, hc httputil.Doer, log, trace io.Writer) *Pipeline {
	pm := pubmed.NewClient(hc, cfg.PubMed, cfg.HTTP)
	p := &Pipeline{
		IDs:        pm,
		Details:    pm,
		MaxResults: cfg.PubMed.MaxResults,
		Log:        log,
		Trace:      trace,
	}
	if cfg.Crossref.Enabled {
		p.Emails = crossref.NewClient(hc, cfg.Crossref, cfg.HTTP)
	}
	return p
}

// Run executes the pipeline for query. Fetch errors abort the run. A
// malformed record is skipped with a warning, and so is any record whose
// PMID was not requested or was already seen, so N ids yield at most N
// papers. A failed email lookup only leaves that record without an email.
// An empty query or no matches is an empty, successful result.
func (p *Pipeline) Run(ctx context.Context, query string) (Result, error) {
	log, trace := p.writers()
	var res Result

	fmt.Fprintf(trace, "query: %q (max %d)\n", query, p.MaxResults)
	ids, err := p.IDs.FetchIDs(ctx, query, p.MaxResults)
	if err != nil {
		return res, fmt.Errorf("fetching PubMed IDs: %w", err)
	}
	res.IDs = ids
	fmt.Fprintf(trace, "search: %d id(s)\n", len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	doc, err := p.Details.FetchDetails(ctx, ids)
	if err != nil {
		return res, fmt.Errorf("fetching paper details: %w", err)
	}
	fmt.Fprintf(trace, "fetch: %d byte(s) for %d id(s)\n", len(doc), len(ids))

	parsed := pubmed.ParseArticles(doc).Restrict(ids)
	res.Papers = parsed.Papers
	res.Skipped = parsed.Skipped
	for _, s := range parsed.Skipped {
		fmt.Fprintf(log, "warning: skipped %s\n", s)
	}
	fmt.Fprintf(trace, "parse: %d paper(s), %d skipped\n", len(res.Papers), len(res.Skipped))

	inline := 0
	for i := range res.Papers {
		if res.Papers[i].HasEmail() {
			inline++
			continue
		}
		looked, ok := p.resolveEmail(ctx, &res.Papers[i])
		if looked {
			res.Lookups++
		}
		if ok {
			res.Resolved++
		}
	}
	fmt.Fprintf(trace, "enrich: %d inline, %d lookup(s), %d resolved\n", inline, res.Lookups, res.Resolved)
	return res, nil
}

// resolveEmail fills paper.Email from the lookup service. It reports
// whether a lookup was issued and whether it produced an email. Papers
// that already carry an inline email, or that have no DOI, are left alone
// and no request is made.
func (p *Pipeline) resolveEmail(ctx context.Context, paper *types.Paper) (looked, ok bool) {
	if p.Emails == nil || paper.HasEmail() || paper.DOI == "" {
		return false, false
	}
	_, trace := p.writers()

	email, err := p.Emails.LookupEmail(ctx, paper.DOI)
	if err != nil {
		fmt.Fprintf(trace, "enrich: %s (doi %s): %v\n", paper.ID, paper.DOI, err)
		return true, false
	}
	if email == "" {
		return true, false
	}
	paper.Email = email
	paper.EmailSource = types.EmailCrossref
	return true, true
}

func (p *Pipeline) writers() (log, trace io.Writer) {
	log, trace = p.Log, p.Trace
	if log == nil {
		log = io.Discard
	}
	if trace == nil {
		trace = io.Discard
	}
	return log, trace
}
