// Package chi exposes the HTTP API: recipe search, catalog management,
// and operational endpoints.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	chiv5 "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cuisine-artisanale/recherche/internal/domain"
	domrecipe "github.com/cuisine-artisanale/recherche/internal/domain/recipe"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/candidate"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/page"
	"github.com/cuisine-artisanale/recherche/internal/domain/search/query"
	"github.com/cuisine-artisanale/recherche/internal/logger"
	"github.com/cuisine-artisanale/recherche/internal/metrics"
	healthuc "github.com/cuisine-artisanale/recherche/internal/usecase/health"
	recipeuc "github.com/cuisine-artisanale/recherche/internal/usecase/recipe"
	searchuc "github.com/cuisine-artisanale/recherche/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server routes API requests to the usecase services.
type Server struct {
	search          *searchuc.Service
	recipes         *recipeuc.Service
	health          *healthuc.Service
	logger          *zap.Logger
	errorHandlers   []errorHandler
	defaultPageSize int
	maxPageSize     int
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	recipes *recipeuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:          search,
		recipes:         recipes,
		health:          health,
		logger:          logger,
		defaultPageSize: 20,
		maxPageSize:     100,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrRecipeNotFound, http.StatusNotFound, "recipe_not_found"),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, "already_exists"),
		sentinelHandler(domain.ErrInvalidRecipe, http.StatusBadRequest, "validation_failed"),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, "invalid_query"),
		sentinelHandler(domain.ErrInvalidCursor, http.StatusBadRequest, "invalid_cursor"),
		sentinelHandler(domain.ErrRetrieval, http.StatusBadGateway, "retrieval_failed"),
	}
	return s
}

// WithPagination overrides the default and maximum page sizes.
func (s *Server) WithPagination(defaultSize, maxSize int) *Server {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// Routes mounts all API endpoints on the given router.
func (s *Server) Routes(r chiv5.Router) {
	r.Get("/health", s.healthCheck)
	r.Get("/metrics", s.metricsHandler)
	r.Route("/api/v1", func(r chiv5.Router) {
		r.Get("/search", s.searchRecipes)
		r.Get("/recipes/stats", s.recipeStats)
		r.Route("/recipes/{id}", func(r chiv5.Router) {
			r.Put("/", s.upsertRecipe)
			r.Get("/", s.getRecipe)
			r.Delete("/", s.deleteRecipe)
		})
	})
}

// searchRecipes handles GET /api/v1/search.
func (s *Server) searchRecipes(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := query.New(params.Get("q"), params.Get("category"), params.Get("region"))

	pageSize := s.defaultPageSize
	if raw := params.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "page_size must be an integer")
			return
		}
		pageSize = n
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	res, err := s.search.Search(r.Context(), q, pageSize, page.Cursor(params.Get("cursor")))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	metrics.RecordSearch(string(q.Mode()), len(res.Items()))

	items := make([]searchItem, len(res.Items()))
	for i, c := range res.Items() {
		items[i] = searchItemFromCandidate(c)
	}

	resp := searchResponse{Items: items, HasMore: res.HasMore()}
	if res.Next() != "" {
		cur := string(res.Next())
		resp.NextCursor = &cur
	}
	writeJSON(w, http.StatusOK, resp)
}

// upsertRecipe handles PUT /api/v1/recipes/{id}.
func (s *Server) upsertRecipe(w http.ResponseWriter, r *http.Request) {
	id := chiv5.URLParam(r, "id")

	var req upsertRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}

	rec, created, err := s.recipes.Upsert(r.Context(), id, req.Title, req.Category, req.Region)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", fmt.Sprintf("/api/v1/recipes/%s", id))
	}
	writeJSON(w, status, recipeToResponse(&rec))
}

// getRecipe handles GET /api/v1/recipes/{id}.
func (s *Server) getRecipe(w http.ResponseWriter, r *http.Request) {
	rec, err := s.recipes.Get(r.Context(), chiv5.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipeToResponse(&rec))
}

// deleteRecipe handles DELETE /api/v1/recipes/{id}.
func (s *Server) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	if err := s.recipes.Delete(r.Context(), chiv5.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// recipeStats handles GET /api/v1/recipes/stats.
func (s *Server) recipeStats(w http.ResponseWriter, r *http.Request) {
	count, err := s.recipes.Count(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{Count: count})
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// metricsHandler handles GET /metrics.
func (s *Server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

type upsertRecipeRequest struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Region   string `json:"region,omitempty"`
}

type recipeResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Region   string   `json:"region,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type searchItem struct {
	recipeResponse
	Score *float64 `json:"score,omitempty"`
}

type searchResponse struct {
	Items      []searchItem `json:"items"`
	HasMore    bool         `json:"has_more"`
	NextCursor *string      `json:"next_cursor,omitempty"`
}

type statsResponse struct {
	Count int `json:"count"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func recipeToResponse(rec *domrecipe.Recipe) recipeResponse {
	return recipeResponse{
		ID:       rec.ID(),
		Title:    rec.Title(),
		Category: rec.Category(),
		Region:   rec.Region(),
		Keywords: rec.Keywords(),
	}
}

func searchItemFromCandidate(c candidate.Candidate) searchItem {
	rec := c.Recipe()
	item := searchItem{recipeResponse: recipeToResponse(&rec)}
	if c.Scored() {
		score := c.Score()
		item.Score = &score
	}
	return item
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrRecipeNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidRecipe,
		domain.ErrInvalidQuery,
		domain.ErrInvalidCursor,
		domain.ErrRetrieval,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContextOr(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
