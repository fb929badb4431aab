// Package query defines the validated, normalized search query value object.
package query

import (
	"strings"

	"github.com/cuisine-artisanale/recherche/internal/textnorm"
)

// MaxFreeTextLength is the maximum allowed free-text length in runes.
const MaxFreeTextLength = 256

// Mode selects the retrieval strategy for a query.
type Mode string

const (
	// Browse paginates the whole collection ordered by title.
	Browse Mode = "browse"
	// Filtered applies category/region predicates directly at the store.
	Filtered Mode = "filtered"
	// Keyword runs the fuzzy keyword pipeline over the free text.
	Keyword Mode = "keyword"
)

// Query is a normalized search request: free text plus optional exact-match
// filters. Whitespace-only free text is treated as empty.
type Query struct {
	freeText string
	category string
	region   string
}

// New normalizes and creates a Query. Free text is trimmed and its internal
// whitespace collapsed; text longer than MaxFreeTextLength is truncated.
func New(freeText, category, region string) Query {
	text := strings.Join(strings.Fields(freeText), " ")
	if runes := []rune(text); len(runes) > MaxFreeTextLength {
		text = string(runes[:MaxFreeTextLength])
	}
	return Query{
		freeText: text,
		category: strings.TrimSpace(category),
		region:   strings.TrimSpace(region),
	}
}

// FreeText returns the normalized free-text query, possibly empty.
func (q Query) FreeText() string { return q.freeText }

// Category returns the exact-match category filter, empty when unset.
func (q Query) Category() string { return q.category }

// Region returns the exact-match region filter, empty when unset.
func (q Query) Region() string { return q.region }

// HasFilters reports whether any exact-match filter is set.
func (q Query) HasFilters() bool { return q.category != "" || q.region != "" }

// Mode derives the retrieval strategy: free text wins over filters, and a
// query with neither falls back to unfiltered browsing.
func (q Query) Mode() Mode {
	switch {
	case q.freeText != "":
		return Keyword
	case q.HasFilters():
		return Filtered
	default:
		return Browse
	}
}

// Words returns the lowercased, accent-stripped free-text tokens in input
// order. Empty for browse and filtered modes.
func (q Query) Words() []string {
	if q.freeText == "" {
		return nil
	}
	return textnorm.Words(q.freeText)
}

// Scope is the cursor-validity fingerprint: a cursor issued under one scope
// is rejected under any other (ordering and filters both bind it).
func (q Query) Scope() string {
	return "title_asc|cat=" + q.category + "|reg=" + q.region
}
