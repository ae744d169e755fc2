// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers-list pipeline.
package types

// EmailSource records where a paper's corresponding-author email came from.
type EmailSource string

const (
	EmailNone     EmailSource = ""
	EmailInline   EmailSource = "inline"
	EmailCrossref EmailSource = "crossref"
)

// Paper is one PubMed record after field extraction. Email is filled at
// parse time when an affiliation carries one, otherwise at most once by
// the email resolver.
type Paper struct {
	// ID is the PubMed identifier (PMID).
	ID string `json:"id" yaml:"id"`

	// Title is the article title with inline markup flattened.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is "YYYY", "YYYY-MM", "YYYY-MM-DD", or the raw
	// MedlineDate when the record carries no structured year.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Affiliations lists distinct affiliation strings in author order.
	Affiliations []string `json:"affiliations" yaml:"affiliations"`

	// Email is the corresponding-author email, empty when unknown.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// DOI is the digital-object identifier used for the Crossref lookup.
	// It is not part of the delimited output.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// EmailSource is "inline", "crossref", or empty.
	EmailSource EmailSource `json:"email_source,omitempty" yaml:"email_source,omitempty"`
}

// HasEmail reports whether an email has been set.
func (p Paper) HasEmail() bool {
	return p.Email != ""
}
