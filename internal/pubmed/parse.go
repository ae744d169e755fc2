// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

var (
	errMissingPMID     = errors.New("record has no PMID")
	errUnrequestedPMID = errors.New("unrequested PMID")
	errDuplicatePMID   = errors.New("duplicate PMID")
)

// SkippedArticle describes a <PubmedArticle> fragment that could not be
// turned into a Paper.
type SkippedArticle struct {
	// Index is the fragment's position in the document, starting at 0.
	Index int
	// PMID is set when the fragment decoded far enough to expose one.
	PMID   string
	Reason error
}

func (s SkippedArticle) String() string {
	if s.PMID != "" {
		return fmt.Sprintf("article %d (PMID %s): %v", s.Index, s.PMID, s.Reason)
	}
	return fmt.Sprintf("article %d: %v", s.Index, s.Reason)
}

// ParseResult holds the papers extracted from an EFetch document and the
// fragments that were skipped.
type ParseResult struct {
	Papers  []types.Paper
	Skipped []SkippedArticle

	// indexes holds the fragment index of each entry in Papers.
	indexes []int
}

// Restrict keeps only papers whose PMID is in ids, and only the first copy
// of each. Every dropped paper is added to Skipped.
func (r ParseResult) Restrict(ids []string) ParseResult {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := ParseResult{Skipped: append([]SkippedArticle(nil), r.Skipped...)}
	seen := make(map[string]bool, len(r.Papers))
	for i, p := range r.Papers {
		idx := i
		if i < len(r.indexes) {
			idx = r.indexes[i]
		}
		switch {
		case !wanted[p.ID]:
			out.Skipped = append(out.Skipped, SkippedArticle{Index: idx, PMID: p.ID, Reason: errUnrequestedPMID})
		case seen[p.ID]:
			out.Skipped = append(out.Skipped, SkippedArticle{Index: idx, PMID: p.ID, Reason: errDuplicatePMID})
		default:
			seen[p.ID] = true
			out.Papers = append(out.Papers, p)
			out.indexes = append(out.indexes, idx)
		}
	}
	return out
}

// ParseArticles extracts one Paper per <PubmedArticle> in doc. Each
// fragment is decoded on its own, so a malformed record is skipped and the
// rest of the document is still parsed. Papers carry an inline email when
// an affiliation contains one.
func ParseArticles(doc string) ParseResult {
	var res ParseResult
	for i, frag := range splitArticles(doc) {
		var a pubmedArticle
		if err := decodeFragment(frag, &a); err != nil {
			res.Skipped = append(res.Skipped, SkippedArticle{Index: i, Reason: err})
			continue
		}
		p, err := a.toPaper()
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedArticle{Index: i, PMID: p.ID, Reason: err})
			continue
		}
		res.Papers = append(res.Papers, p)
		res.indexes = append(res.indexes, i)
	}
	return res
}

const (
	articleOpen  = "<PubmedArticle"
	articleClose = "</PubmedArticle>"
)

// splitArticles cuts doc into <PubmedArticle>...</PubmedArticle> fragments.
// A fragment missing its closing tag runs to the end of doc.
func splitArticles(doc string) []string {
	var frags []string
	for {
		i := strings.Index(doc, articleOpen)
		if i < 0 {
			return frags
		}
		rest := doc[i+len(articleOpen):]
		if rest == "" {
			return frags
		}
		// Skip <PubmedArticleSet> and any other longer tag name.
		if c := rest[0]; c != '>' && c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			doc = rest
			continue
		}
		j := strings.Index(rest, articleClose)
		if j < 0 {
			return append(frags, doc[i:])
		}
		end := i + len(articleOpen) + j + len(articleClose)
		frags = append(frags, doc[i:end])
		doc = doc[end:]
	}
}

func decodeFragment(frag string, v any) error {
	d := xml.NewDecoder(strings.NewReader(frag))
	d.Entity = xml.HTMLEntity
	if err := d.Decode(v); err != nil {
		return fmt.Errorf("decoding article: %w", err)
	}
	return nil
}

func (a pubmedArticle) toPaper() (types.Paper, error) {
	mc := a.MedlineCitation
	p := types.Paper{ID: strings.TrimSpace(mc.PMID)}
	if p.ID == "" {
		return p, errMissingPMID
	}

	p.Title = flattenMarkup(mc.Article.Title.Inner)
	if p.Title == "" {
		p.Title = flattenMarkup(mc.Article.VernacularTitle.Inner)
	}
	p.PublicationDate = formatPubDate(mc.Article.PubDate)

	seen := make(map[string]bool)
	for _, au := range mc.Article.Authors {
		if name := au.fullName(); name != "" {
			p.Authors = append(p.Authors, name)
		}
		for _, ai := range au.AffiliationInfo {
			aff := flattenMarkup(ai.Affiliation.Inner)
			if aff == "" || seen[aff] {
				continue
			}
			seen[aff] = true
			p.Affiliations = append(p.Affiliations, aff)
		}
	}

	for _, aff := range p.Affiliations {
		if email := ExtractEmail(aff); email != "" {
			p.Email = email
			p.EmailSource = types.EmailInline
			break
		}
	}

	p.DOI = a.doi()
	return p, nil
}

// doi prefers the PubmedData article id list and falls back to ELocationID.
func (a pubmedArticle) doi() string {
	for _, id := range a.PubmedData.ArticleIDs {
		if strings.EqualFold(id.IDType, "doi") {
			if v := strings.TrimSpace(id.Value); v != "" {
				return v
			}
		}
	}
	for _, loc := range a.MedlineCitation.Article.ELocationIDs {
		if strings.EqualFold(loc.EIDType, "doi") {
			if v := strings.TrimSpace(loc.Value); v != "" {
				return v
			}
		}
	}
	return ""
}

func (au pubmedAuthor) fullName() string {
	if n := strings.TrimSpace(au.CollectiveName); n != "" {
		return n
	}
	return strings.TrimSpace(strings.TrimSpace(au.ForeName) + " " + strings.TrimSpace(au.LastName))
}

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// formatPubDate renders a PubDate as YYYY, YYYY-MM, or YYYY-MM-DD. Month
// names become numbers; an unrecognised month is kept verbatim. Without a
// four-digit year the raw MedlineDate is returned.
func formatPubDate(d pubDate) string {
	year := strings.TrimSpace(d.Year)
	if !isYear(year) {
		return strings.TrimSpace(d.MedlineDate)
	}
	month := normalizeMonth(d.Month)
	if month == "" {
		return year
	}
	if day := normalizeDay(d.Day); day != "" {
		return year + "-" + month + "-" + day
	}
	return year + "-" + month
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func normalizeMonth(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return fmt.Sprintf("%02d", n)
		}
		return ""
	}
	if len(s) >= 3 {
		if n, ok := monthNumbers[strings.ToLower(s[:3])]; ok {
			return fmt.Sprintf("%02d", n)
		}
	}
	return s
}

func normalizeDay(s string) string {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 31 {
		return ""
	}
	return fmt.Sprintf("%02d", n)
}

// PubMed EFetch XML structures.
type pubmedArticle struct {
	MedlineCitation medlineCitation `xml:"MedlineCitation"`
	PubmedData      pubmedData      `xml:"PubmedData"`
}

type medlineCitation struct {
	PMID    string            `xml:"PMID"`
	Article pubmedArticleBody `xml:"Article"`
}

type pubmedArticleBody struct {
	Title           markup         `xml:"ArticleTitle"`
	VernacularTitle markup         `xml:"VernacularTitle"`
	PubDate         pubDate        `xml:"Journal>JournalIssue>PubDate"`
	Authors         []pubmedAuthor `xml:"AuthorList>Author"`
	ELocationIDs    []eLocationID  `xml:"ELocationID"`
}

// markup keeps the raw inner XML so inline tags such as <i> and <sup>
// can be flattened instead of dropped.
type markup struct {
	Inner string `xml:",innerxml"`
}

type pubDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

type pubmedAuthor struct {
	LastName        string            `xml:"LastName"`
	ForeName        string            `xml:"ForeName"`
	CollectiveName  string            `xml:"CollectiveName"`
	AffiliationInfo []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation markup `xml:"Affiliation"`
}

type eLocationID struct {
	EIDType string `xml:"EIdType,attr"`
	Value   string `xml:",chardata"`
}

type pubmedData struct {
	ArticleIDs []articleID `xml:"ArticleIdList>ArticleId"`
}

type articleID struct {
	IDType string `xml:"IdType,attr"`
	Value  string `xml:",chardata"`
}
