// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// emailPattern matches a plain email literal such as the "Electronic
// address: jane.doe@example.org." suffix PubMed appends to affiliations.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// ExtractEmail returns the first email literal in text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// flattenMarkup turns the inner XML of a PubMed text element into plain
// text: inline tags are dropped, entities decoded, whitespace collapsed.
func flattenMarkup(inner string) string {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return ""
	}
	if !strings.ContainsAny(inner, "<&") {
		return collapseSpace(inner)
	}
	inner = unwrapCDATA(inner)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(inner))
	if err != nil {
		return collapseSpace(inner)
	}
	return collapseSpace(doc.Text())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var cdataSection = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)

// unwrapCDATA replaces each CDATA section with its escaped text. The HTML
// parser would otherwise read the section as a comment and drop it.
func unwrapCDATA(s string) string {
	if !strings.Contains(s, "<![CDATA[") {
		return s
	}
	return cdataSection.ReplaceAllStringFunc(s, func(m string) string {
		return html.EscapeString(cdataSection.FindStringSubmatch(m)[1])
	})
}
