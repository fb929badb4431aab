package recherche

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cuisine-artisanale/recherche/internal/db"
	dbRedis "github.com/cuisine-artisanale/recherche/internal/db/redis"
	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/page"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/query"
	reciperepo "github.com/cuisine-artisanale/recherche/internal/repository/recipe"
	healthuc "github.com/cuisine-artisanale/recherche/internal/usecase/health"
	recipeuc "github.com/cuisine-artisanale/recherche/internal/usecase/recipe"
	searchuc "github.com/cuisine-artisanale/recherche/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultPageSize         = 20
)

// Internal interfaces for test substitution.
type searchUseCase interface {
	Search(ctx context.Context, q query.Query, pageSize int, cursor page.Cursor) (page.Page, error)
}

type recipeUseCase interface {
	Upsert(ctx context.Context, id, title, category, region string) (domrecipe.Recipe, bool, error)
	Get(ctx context.Context, id string) (domrecipe.Recipe, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the recherche SDK entry point.
type Client struct {
	store     db.Store
	searchSvc searchUseCase
	recipeSvc recipeUseCase
	healthSvc healthUseCase
	pageSize  int
	obs       *observer
}

// New creates a recherche Client, connects to the database and ensures
// the search index exists. The provided context covers the initial
// readiness check and index creation.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix:       reciperepo.DefaultKeyPrefix,
		defaultPageSize: defaultPageSize,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("recherche: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("recherche: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("recherche: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	return wireClient(ctx, store, cfg, obs)
}

func wireClient(ctx context.Context, store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	repo := reciperepo.New(store, cfg.keyPrefix)
	if err := repo.EnsureIndex(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("recherche: ensure index: %w", err)
	}

	searchSvc := searchuc.New(repo, searchuc.Options{
		Threshold:             cfg.threshold,
		MaxCorrectionDistance: cfg.correctionDistance,
	})

	return &Client{
		store:     store,
		searchSvc: searchSvc,
		recipeSvc: recipeuc.New(repo),
		healthSvc: healthuc.New(store, repo),
		pageSize:  cfg.defaultPageSize,
		obs:       obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// Search runs one search request and returns a page of hits.
func (c *Client) Search(ctx context.Context, req SearchRequest) (_ SearchPage, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	size := req.PageSize
	if size == 0 {
		size = c.pageSize
	}

	q := query.New(req.Text, req.Category, req.Region)
	res, err := c.searchSvc.Search(ctx, q, size, page.Cursor(req.Cursor))
	if err != nil {
		return SearchPage{}, fmt.Errorf("search: %w", err)
	}

	hits := make([]SearchHit, len(res.Items()))
	for i, cand := range res.Items() {
		hits[i] = fromInternalCandidate(cand)
	}
	return SearchPage{
		Hits:       hits,
		HasMore:    res.HasMore(),
		NextCursor: string(res.Next()),
	}, nil
}

// Recipes returns the recipe ingest service.
func (c *Client) Recipes() *RecipeService {
	return &RecipeService{svc: c.recipeSvc, obs: c.obs}
}
