package recherche

import (
	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/candidate"
)

// Recipe is the searchable projection of a recipe. Keywords are derived
// from the title at ingest; values set by the caller are ignored on Upsert.
type Recipe struct {
	ID       string
	Title    string
	Category string
	Region   string
	Keywords []string
}

// SearchRequest describes one search call. Text selects the fuzzy keyword
// pipeline; without it Category/Region filter directly, and with neither
// the whole collection is browsed in title order.
type SearchRequest struct {
	Text     string
	Category string
	Region   string

	// PageSize caps the number of hits returned. Zero uses the client
	// default.
	PageSize int

	// Cursor resumes a browse or filtered listing. Keyword searches are
	// not resumable and reject cursors.
	Cursor string
}

// SearchHit is a single result. Score is only meaningful when Scored is
// true; browse and filtered listings return unscored hits.
type SearchHit struct {
	Recipe
	Score  float64
	Scored bool
}

// SearchPage is one slice of search results.
type SearchPage struct {
	Hits    []SearchHit
	HasMore bool

	// NextCursor resumes the listing, empty when HasMore is false.
	NextCursor string
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component name to "ok"/"error"
}

func fromInternalRecipe(r domrecipe.Recipe) Recipe {
	return Recipe{
		ID:       r.ID(),
		Title:    r.Title(),
		Category: r.Category(),
		Region:   r.Region(),
		Keywords: r.Keywords(),
	}
}

func fromInternalCandidate(c candidate.Candidate) SearchHit {
	return SearchHit{
		Recipe: fromInternalRecipe(c.Recipe()),
		Score:  c.Score(),
		Scored: c.Scored(),
	}
}
