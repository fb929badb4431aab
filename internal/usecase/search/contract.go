package search

import (
	"context"

	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
)

// Repository defines the storage contract for search retrieval.
type Repository interface {
	// FindByKeywords returns recipes whose keyword index intersects the
	// given variant set.
	FindByKeywords(ctx context.Context, variants []string, limit int) ([]domrecipe.Recipe, error)

	// FindByFilters returns recipes matching the category/region predicates,
	// ordered by title.
	FindByFilters(ctx context.Context, category, region string, offset, limit int) ([]domrecipe.Recipe, error)

	// List returns a slice of the full collection ordered by title.
	List(ctx context.Context, offset, limit int) ([]domrecipe.Recipe, error)

	// Titles returns recipe titles for the spell-correction corpus.
	Titles(ctx context.Context, limit int) ([]string, error)
}
