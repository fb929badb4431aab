// Package recipe persists the searchable recipe projection in the document
// store and exposes the retrieval passes the search pipeline runs.
package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cuisine-artisanale/recherche/internal/db"
	"github.com/cuisine-artisanale/recherche/internal/domain"
	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
)

// DefaultKeyPrefix namespaces all recherche keys in the store.
const DefaultKeyPrefix = "recette:"

// store is the consumer interface for recipe persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchTags(ctx context.Context, q *db.TagQuery) (*db.SearchResult, error)
	SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements the search and ingest repository contracts.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a recipe repository. An empty keyPrefix uses DefaultKeyPrefix.
func New(s store, keyPrefix string) *Repo {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &Repo{store: s, keyPrefix: keyPrefix}
}

// EnsureIndex creates the FT index when absent.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("probe index: %w", err)
	}
	if exists {
		return nil
	}

	def, err := db.NewIndex(r.indexName()).
		Prefix(r.recipePrefix()).
		SortableText(fieldTitle).
		TagWithSeparator(fieldKeywords, ",").
		Tag(fieldCategory).
		Tag(fieldRegion).
		Build()
	if err != nil {
		return fmt.Errorf("build index definition: %w", err)
	}

	if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// IndexReady reports whether the FT index exists.
func (r *Repo) IndexReady(ctx context.Context) (bool, error) {
	return r.store.IndexExists(ctx, r.indexName())
}

// Upsert creates or updates a recipe. Returns true if created.
func (r *Repo) Upsert(ctx context.Context, rec *domrecipe.Recipe) (bool, error) {
	key := r.recipeKey(rec.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.HSet(ctx, key, buildHashFields(rec)); err != nil {
		return false, fmt.Errorf("hset %s: %w", key, err)
	}

	return !exists, nil
}

// Get returns a recipe by ID.
func (r *Repo) Get(ctx context.Context, id string) (domrecipe.Recipe, error) {
	key := r.recipeKey(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domrecipe.Recipe{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return domrecipe.Recipe{}, domain.ErrRecipeNotFound
	}
	return parseHashFields(id, m), nil
}

// Delete removes a recipe.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.recipeKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// Count returns the number of indexed recipes.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, r.indexName(), "*")
	if err != nil {
		return 0, fmt.Errorf("search count: %w", err)
	}
	return n, nil
}

// FindByKeywords retrieves recipes whose keyword index intersects the given
// variant set, up to limit.
func (r *Repo) FindByKeywords(ctx context.Context, variants []string, limit int) ([]domrecipe.Recipe, error) {
	res, err := r.store.SearchTags(ctx, &db.TagQuery{
		IndexName:    r.indexName(),
		Field:        fieldKeywords,
		Values:       variants,
		Limit:        limit,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: keyword search: %w", domain.ErrRetrieval, err)
	}
	return r.parseEntries(res), nil
}

// FindByFilters retrieves a title-ordered window of recipes matching the
// given exact tag predicates at the store level.
func (r *Repo) FindByFilters(ctx context.Context, category, region string, offset, limit int) ([]domrecipe.Recipe, error) {
	filters := make(map[string]string, 2)
	if category != "" {
		filters[fieldCategory] = category
	}
	if region != "" {
		filters[fieldRegion] = region
	}

	res, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName:    r.indexName(),
		Filters:      filters,
		SortBy:       fieldTitle,
		Offset:       offset,
		Limit:        limit,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: filtered scan: %w", domain.ErrRetrieval, err)
	}
	return r.parseEntries(res), nil
}

// List retrieves a title-ordered window of the whole collection.
func (r *Repo) List(ctx context.Context, offset, limit int) ([]domrecipe.Recipe, error) {
	res, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName:    r.indexName(),
		SortBy:       fieldTitle,
		Offset:       offset,
		Limit:        limit,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: collection scan: %w", domain.ErrRetrieval, err)
	}
	return r.parseEntries(res), nil
}

// Titles returns up to limit recipe titles in title order, the corpus for
// spell correction.
func (r *Repo) Titles(ctx context.Context, limit int) ([]string, error) {
	res, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName:    r.indexName(),
		SortBy:       fieldTitle,
		Limit:        limit,
		ReturnFields: []string{fieldTitle},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: title scan: %w", domain.ErrRetrieval, err)
	}

	titles := make([]string, 0, len(res.Entries))
	for _, entry := range res.Entries {
		if t := entry.Fields[fieldTitle]; t != "" {
			titles = append(titles, t)
		}
	}
	return titles, nil
}

func (r *Repo) parseEntries(res *db.SearchResult) []domrecipe.Recipe {
	if res == nil || len(res.Entries) == 0 {
		return nil
	}
	out := make([]domrecipe.Recipe, 0, len(res.Entries))
	for _, entry := range res.Entries {
		id := strings.TrimPrefix(entry.Key, r.recipePrefix())
		out = append(out, parseHashFields(id, entry.Fields))
	}
	return out
}

func (r *Repo) indexName() string {
	return r.keyPrefix + "idx"
}

func (r *Repo) recipePrefix() string {
	return r.keyPrefix + "recipe:"
}

func (r *Repo) recipeKey(id string) string {
	return r.recipePrefix() + id
}
