// Package recipe manages the searchable recipe catalog: ingest, lookup,
// and removal of the projections the search pipeline reads.
package recipe

import (
	"context"
	"fmt"

	"github.com/cuisine-artisanale/recherche/internal/domain"
	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
	"github.com/cuisine-artisanale/recherche/internal/textnorm"
)

// Service handles catalog writes and reads.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert validates the recipe, derives its keyword index tokens from the
// title, and writes it. The second return is true when a new recipe was
// created rather than an existing one overwritten.
func (s *Service) Upsert(
	ctx context.Context, id, title, category, region string,
) (domrecipe.Recipe, bool, error) {
	rec, err := domrecipe.New(id, title, category, region)
	if err != nil {
		return domrecipe.Recipe{}, false, fmt.Errorf("%w: %w", domain.ErrInvalidRecipe, err)
	}

	indexed := rec.WithKeywords(textnorm.Tokenize(rec.Title()))
	created, err := s.repo.Upsert(ctx, &indexed)
	if err != nil {
		return domrecipe.Recipe{}, false, fmt.Errorf("upsert recipe: %w", err)
	}
	return indexed, created, nil
}

// Get returns a recipe by ID.
func (s *Service) Get(ctx context.Context, id string) (domrecipe.Recipe, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return domrecipe.Recipe{}, fmt.Errorf("get recipe: %w", err)
	}
	return rec, nil
}

// Delete removes a recipe from the catalog.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// Count returns the catalog size.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return n, nil
}
