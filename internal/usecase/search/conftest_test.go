package search

import (
	"context"
	"testing"

	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
)

type mockRepo struct {
	findByKeywordsFn func(ctx context.Context, variants []string, limit int) ([]domrecipe.Recipe, error)
	findByFiltersFn  func(ctx context.Context, category, region string, offset, limit int) ([]domrecipe.Recipe, error)
	listFn           func(ctx context.Context, offset, limit int) ([]domrecipe.Recipe, error)
	titlesFn         func(ctx context.Context, limit int) ([]string, error)
}

func (m *mockRepo) FindByKeywords(ctx context.Context, variants []string, limit int) ([]domrecipe.Recipe, error) {
	if m.findByKeywordsFn != nil {
		return m.findByKeywordsFn(ctx, variants, limit)
	}
	return nil, nil
}

func (m *mockRepo) FindByFilters(ctx context.Context, category, region string, offset, limit int) ([]domrecipe.Recipe, error) {
	if m.findByFiltersFn != nil {
		return m.findByFiltersFn(ctx, category, region, offset, limit)
	}
	return nil, nil
}

func (m *mockRepo) List(ctx context.Context, offset, limit int) ([]domrecipe.Recipe, error) {
	if m.listFn != nil {
		return m.listFn(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockRepo) Titles(ctx context.Context, limit int) ([]string, error) {
	if m.titlesFn != nil {
		return m.titlesFn(ctx, limit)
	}
	return nil, nil
}

func mkRecipe(t *testing.T, id, title, category, region string) domrecipe.Recipe {
	t.Helper()
	r, err := domrecipe.New(id, title, category, region)
	if err != nil {
		t.Fatalf("New(%q): %v", id, err)
	}
	return r
}
