package recherche

import (
	"context"
	"fmt"
	"time"
)

// RecipeService manages the searchable recipe projections.
type RecipeService struct {
	svc recipeUseCase
	obs *observer
}

// Upsert creates or updates a recipe, deriving its keyword tokens from
// the title. Returns the stored recipe and true when it was created.
func (s *RecipeService) Upsert(ctx context.Context, r Recipe) (_ Recipe, created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("recipe.upsert", start, err) }()

	stored, created, err := s.svc.Upsert(ctx, r.ID, r.Title, r.Category, r.Region)
	if err != nil {
		return Recipe{}, false, fmt.Errorf("upsert recipe: %w", err)
	}
	return fromInternalRecipe(stored), created, nil
}

// Get retrieves a recipe by ID.
func (s *RecipeService) Get(ctx context.Context, id string) (_ Recipe, err error) {
	start := time.Now()
	defer func() { s.obs.observe("recipe.get", start, err) }()

	rec, err := s.svc.Get(ctx, id)
	if err != nil {
		return Recipe{}, fmt.Errorf("get recipe: %w", err)
	}
	return fromInternalRecipe(rec), nil
}

// Delete removes a recipe by ID.
func (s *RecipeService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("recipe.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// Count returns the number of indexed recipes.
func (s *RecipeService) Count(ctx context.Context) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("recipe.count", start, err) }()

	n, err := s.svc.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return n, nil
}
