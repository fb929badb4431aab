package search

import (
	"context"
	"fmt"

	"github.com/cuisine-artisanale/recherche/internal/domain"
	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/candidate"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/page"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/query"
	"github.com/cuisine-artisanale/recherche/internal/fuzzy"
	"github.com/cuisine-artisanale/recherche/internal/textnorm"
)

// Service executes recipe searches across browse, filtered, and keyword modes.
type Service struct {
	repo Repository
	opts Options
}

// New creates a search service.
func New(repo Repository, opts Options) *Service {
	return &Service{repo: repo, opts: opts.withDefaults()}
}

// Search runs one query execution and returns the visible page.
func (s *Service) Search(
	ctx context.Context, q query.Query, pageSize int, cursor page.Cursor,
) (page.Page, error) {
	if pageSize <= 0 {
		return page.Page{}, fmt.Errorf("%w: page size must be positive", domain.ErrInvalidQuery)
	}

	switch q.Mode() {
	case query.Keyword:
		return s.searchKeyword(ctx, q, pageSize, cursor)
	case query.Filtered:
		return s.listFiltered(ctx, q, pageSize, cursor)
	default:
		return s.listAll(ctx, q, pageSize, cursor)
	}
}

// searchKeyword runs the fuzzy pipeline: spell-correct the query words,
// expand variants, retrieve and merge candidates, post-filter, rank.
// Each filter or text change re-runs the pipeline from scratch, so there
// is no cursor to resume from.
func (s *Service) searchKeyword(
	ctx context.Context, q query.Query, pageSize int, cursor page.Cursor,
) (page.Page, error) {
	if cursor != "" {
		return page.Page{}, fmt.Errorf("%w: keyword searches are not resumable", domain.ErrInvalidCursor)
	}

	words, err := s.correctWords(ctx, q.Words())
	if err != nil {
		return page.Page{}, err
	}

	merged, err := s.retrieve(ctx, words, pageSize)
	if err != nil {
		return page.Page{}, err
	}

	if q.HasFilters() {
		merged = filterByTags(merged, q.Category(), q.Region())
	}

	ranked := s.opts.rank(merged, words)
	if len(ranked) > pageSize {
		ranked = ranked[:pageSize]
	}
	return page.New(ranked, false, ""), nil
}

// listFiltered applies category/region as direct store predicates and
// paginates the title-ordered result with a cursor.
func (s *Service) listFiltered(
	ctx context.Context, q query.Query, pageSize int, cursor page.Cursor,
) (page.Page, error) {
	offset, err := page.DecodeCursor(cursor, q.Scope())
	if err != nil {
		return page.Page{}, err
	}

	recipes, err := s.repo.FindByFilters(ctx, q.Category(), q.Region(), offset, pageSize+1)
	if err != nil {
		return page.Page{}, err
	}
	return buildPage(recipes, q.Scope(), offset, pageSize), nil
}

// listAll paginates the full collection ordered by title.
func (s *Service) listAll(
	ctx context.Context, q query.Query, pageSize int, cursor page.Cursor,
) (page.Page, error) {
	offset, err := page.DecodeCursor(cursor, q.Scope())
	if err != nil {
		return page.Page{}, err
	}

	recipes, err := s.repo.List(ctx, offset, pageSize+1)
	if err != nil {
		return page.Page{}, err
	}
	return buildPage(recipes, q.Scope(), offset, pageSize), nil
}

// correctWords replaces each query word with its closest known title word
// within the correction distance, leaving unfixable words unchanged.
func (s *Service) correctWords(ctx context.Context, words []string) ([]string, error) {
	titles, err := s.repo.Titles(ctx, s.opts.TitleCorpusLimit)
	if err != nil {
		return nil, fmt.Errorf("load title corpus: %w", err)
	}

	corpus := corpusWords(titles)
	corrected := make([]string, len(words))
	for i, w := range words {
		corrected[i] = fuzzy.Correct(w, corpus, s.opts.MaxCorrectionDistance)
	}
	return corrected, nil
}

// retrieve issues one tag-membership query per corrected word, sequentially,
// and merges the hits keyed by id. The first retrieval of an id wins its
// position so merge order stays deterministic. When keyword hits cannot fill
// a page, a general title-ordered batch is pulled in purely for scoring.
func (s *Service) retrieve(
	ctx context.Context, words []string, pageSize int,
) ([]domrecipe.Recipe, error) {
	limit := pageSize * s.opts.OverfetchFactor
	seen := make(map[string]struct{})
	var merged []domrecipe.Recipe

	add := func(hits []domrecipe.Recipe) {
		for _, r := range hits {
			if _, ok := seen[r.ID()]; ok {
				continue
			}
			seen[r.ID()] = struct{}{}
			merged = append(merged, r)
		}
	}

	for _, w := range words {
		hits, err := s.repo.FindByKeywords(ctx, fuzzy.Variants(w), limit)
		if err != nil {
			return nil, err
		}
		add(hits)
	}

	if len(merged) < pageSize {
		batch, err := s.repo.List(ctx, 0, limit)
		if err != nil {
			return nil, err
		}
		add(batch)
	}

	return merged, nil
}

// filterByTags drops recipes that miss a present category or region filter.
func filterByTags(recipes []domrecipe.Recipe, category, region string) []domrecipe.Recipe {
	kept := recipes[:0]
	for _, r := range recipes {
		if category != "" && r.Category() != category {
			continue
		}
		if region != "" && r.Region() != region {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// buildPage slices a pageSize+1 fetch into the visible page plus the cursor
// for the next one.
func buildPage(recipes []domrecipe.Recipe, scope string, offset, pageSize int) page.Page {
	hasMore := len(recipes) > pageSize
	if hasMore {
		recipes = recipes[:pageSize]
	}

	items := make([]candidate.Candidate, 0, len(recipes))
	for _, r := range recipes {
		items = append(items, candidate.Unscored(r))
	}

	var next page.Cursor
	if hasMore {
		next = page.EncodeCursor(scope, offset+pageSize)
	}
	return page.New(items, hasMore, next)
}

// corpusWords flattens titles into a deduplicated list of normalized words.
func corpusWords(titles []string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, t := range titles {
		for _, w := range textnorm.Words(t) {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	return words
}
