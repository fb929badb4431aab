package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/cuisine-artisanale/recherche/internal/db"
	"github.com/cuisine-artisanale/recherche/internal/domain"
	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
)

func TestUpsert_NewRecipe(t *testing.T) {
	repo, ms := newTestRepo(t)

	var gotKey string
	var gotFields map[string]string
	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }
	ms.hsetFn = func(_ context.Context, key string, fields map[string]string) error {
		gotKey = key
		gotFields = fields
		return nil
	}

	rec, _ := domrecipe.New("tarte-tatin", "Tarte Tatin", "Dessert", "centre")
	rec = rec.WithKeywords([]string{"tarte", "tatin"})

	created, err := repo.Upsert(context.Background(), &rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true for a new recipe")
	}
	if gotKey != "recette:recipe:tarte-tatin" {
		t.Errorf("key = %q", gotKey)
	}
	if gotFields["keywords"] != "tarte,tatin" {
		t.Errorf("keywords field = %q", gotFields["keywords"])
	}
	if gotFields["title"] != "Tarte Tatin" {
		t.Errorf("title field = %q", gotFields["title"])
	}
}

func TestUpsert_Existing(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return true, nil }

	rec, _ := domrecipe.New("r1", "Quiche", "", "")
	created, err := repo.Upsert(context.Background(), &rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false for an existing recipe")
	}
}

func TestGet_Found(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, key string) (map[string]string, error) {
		if key != "recette:recipe:r1" {
			t.Errorf("key = %q", key)
		}
		return map[string]string{
			"title": "Tarte aux pommes", "keywords": "tarte,pommes",
			"category": "Dessert", "region": "normandie",
		}, nil
	}

	rec, err := repo.Get(context.Background(), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Title() != "Tarte aux pommes" {
		t.Errorf("Title = %q", rec.Title())
	}
	if len(rec.Keywords()) != 2 {
		t.Errorf("Keywords = %v", rec.Keywords())
	}
	if rec.Category() != "Dessert" {
		t.Errorf("Category = %q", rec.Category())
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return map[string]string{}, nil
	}

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Errorf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }

	err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Errorf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestFindByKeywords_BuildsTagQuery(t *testing.T) {
	repo, ms := newTestRepo(t)

	var gotQuery *db.TagQuery
	ms.searchTagsFn = func(_ context.Context, q *db.TagQuery) (*db.SearchResult, error) {
		gotQuery = q
		return &db.SearchResult{
			Total: 1,
			Entries: []db.SearchEntry{
				entry("recette:recipe:r1", map[string]string{"title": "Tarte Tatin"}),
			},
		}, nil
	}

	recs, err := repo.FindByKeywords(context.Background(), []string{"tarte", "tartes"}, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Field != "keywords" || len(gotQuery.Values) != 2 || gotQuery.Limit != 40 {
		t.Errorf("tag query = %+v", gotQuery)
	}
	if len(recs) != 1 || recs[0].ID() != "r1" {
		t.Errorf("recipes = %v", recs)
	}
}

func TestFindByKeywords_StoreFailure(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.searchTagsFn = func(_ context.Context, _ *db.TagQuery) (*db.SearchResult, error) {
		return nil, errors.New("connection refused")
	}

	_, err := repo.FindByKeywords(context.Background(), []string{"tarte"}, 10)
	if !errors.Is(err, domain.ErrRetrieval) {
		t.Errorf("expected ErrRetrieval, got %v", err)
	}
}

func TestFindByFilters_BuildsPredicates(t *testing.T) {
	repo, ms := newTestRepo(t)

	var gotQuery *db.ListQuery
	ms.searchListFn = func(_ context.Context, q *db.ListQuery) (*db.SearchResult, error) {
		gotQuery = q
		return &db.SearchResult{}, nil
	}

	_, err := repo.FindByFilters(context.Background(), "Dessert", "alsace", 10, 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Filters["category"] != "Dessert" {
		t.Errorf("filters = %v, missing category predicate", gotQuery.Filters)
	}
	if gotQuery.Filters["region"] != "alsace" {
		t.Errorf("filters = %v, missing region predicate", gotQuery.Filters)
	}
	if gotQuery.Query != "" {
		t.Errorf("query = %q, predicates belong in Filters", gotQuery.Query)
	}
	if gotQuery.SortBy != "title" || gotQuery.Offset != 10 || gotQuery.Limit != 21 {
		t.Errorf("list query = %+v", gotQuery)
	}
}

func TestList_SortsByTitle(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.searchListFn = func(_ context.Context, q *db.ListQuery) (*db.SearchResult, error) {
		if q.SortBy != "title" {
			t.Errorf("SortBy = %q, want title", q.SortBy)
		}
		return &db.SearchResult{}, nil
	}

	if _, err := repo.List(context.Background(), 0, 11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTitles_ExtractsTitleField(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.searchListFn = func(_ context.Context, q *db.ListQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total: 2,
			Entries: []db.SearchEntry{
				entry("recette:recipe:r1", map[string]string{"title": "Tarte Tatin"}),
				entry("recette:recipe:r2", map[string]string{"title": "Tarte aux pommes"}),
			},
		}, nil
	}

	titles, err := repo.Titles(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 2 || titles[0] != "Tarte Tatin" {
		t.Errorf("titles = %v", titles)
	}
}

func TestEnsureIndex_SkipsWhenPresent(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.indexExistsFn = func(_ context.Context, _ string) (bool, error) { return true, nil }
	ms.createIndexFn = func(_ context.Context, _ *db.IndexDefinition) error {
		t.Error("CreateIndex should not be called when the index exists")
		return nil
	}

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnsureIndex_CreatesSchema(t *testing.T) {
	repo, ms := newTestRepo(t)

	var gotDef *db.IndexDefinition
	ms.createIndexFn = func(_ context.Context, def *db.IndexDefinition) error {
		gotDef = def
		return nil
	}

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDef == nil {
		t.Fatal("expected CreateIndex call")
	}
	if gotDef.Name != "recette:idx" {
		t.Errorf("index name = %q", gotDef.Name)
	}
	if len(gotDef.Prefixes) != 1 || gotDef.Prefixes[0] != "recette:recipe:" {
		t.Errorf("prefixes = %v", gotDef.Prefixes)
	}
	if len(gotDef.Fields) != 4 {
		t.Errorf("expected 4 schema fields, got %d", len(gotDef.Fields))
	}
}
