// Package recipe defines the searchable projection of a recipe: the fields
// the search engine reads, never the full recipe document the site renders.
package recipe

import (
	"fmt"
	"regexp"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxTitleLength is the maximum recipe title length in runes.
const MaxTitleLength = 256

// Recipe is an immutable searchable item: stable id, display title, optional
// category/region tags, and the precomputed keyword-index tokens.
type Recipe struct {
	id       string
	title    string
	category string
	region   string
	keywords []string
}

// New validates and creates a Recipe.
// ID: ^[a-zA-Z0-9_-]+$, 1-128 chars. Title: non-empty, max 256 runes.
// Keywords are attached later via WithKeywords, at ingest time.
func New(id, title, category, region string) (Recipe, error) {
	if id == "" {
		return Recipe{}, fmt.Errorf("recipe ID is required")
	}
	if len(id) > 128 {
		return Recipe{}, fmt.Errorf("recipe ID too long (max 128)")
	}
	if !idRegex.MatchString(id) {
		return Recipe{}, fmt.Errorf("recipe ID must be alphanumeric with underscores and hyphens")
	}
	if title == "" {
		return Recipe{}, fmt.Errorf("title is required")
	}
	if len([]rune(title)) > MaxTitleLength {
		return Recipe{}, fmt.Errorf("title too long (max %d)", MaxTitleLength)
	}

	return Recipe{id: id, title: title, category: category, region: region}, nil
}

// Reconstruct creates a Recipe without validation (storage hydration).
func Reconstruct(id, title, category, region string, keywords []string) Recipe {
	return Recipe{id: id, title: title, category: category, region: region, keywords: keywords}
}

// ID returns the stable recipe identifier.
func (r *Recipe) ID() string { return r.id }

// Title returns the display title used for matching.
func (r *Recipe) Title() string { return r.title }

// Category returns the category tag ("Dessert", "Plat", ...), may be empty.
func (r *Recipe) Category() string { return r.category }

// Region returns the region code, may be empty.
func (r *Recipe) Region() string { return r.region }

// Keywords returns the precomputed index tokens.
func (r *Recipe) Keywords() []string { return r.keywords }

// WithKeywords returns a copy with the given index tokens set.
func (r *Recipe) WithKeywords(keywords []string) Recipe {
	return Recipe{
		id: r.id, title: r.title, category: r.category, region: r.region,
		keywords: keywords,
	}
}
