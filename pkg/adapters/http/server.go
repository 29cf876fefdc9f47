package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/recipebook/pkg/domain"
	"github.com/aretw0/recipebook/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RecipeResponse is the JSON shape of a single recipe.
type RecipeResponse struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	MethodSteps []string `json:"method_steps"`
}

// ListResponse is the JSON shape of GET /recipes.
type ListResponse struct {
	Recipes []string `json:"recipes"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves read-only recipe lookups.
type Server struct {
	Registry ports.Registry
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the structured logger for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics mounts /metrics for the given gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewHandler creates a new HTTP handler for the registry.
func NewHandler(reg ports.Registry, opts ...Option) http.Handler {
	server := &Server{
		Registry: reg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/recipes", server.List)
	r.Get("/recipes/{name}", server.Get)
	if server.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// List handles GET /recipes.
func (s *Server) List(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, ListResponse{Recipes: s.Registry.Names()})
}

// Get handles GET /recipes/{name}.
func (s *Server) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	recipe, ok, err := s.Registry.For(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		s.logger.Warn("Get: lookup failed", "recipe", name, "error", err)
		s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
		return
	}
	if !ok {
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "recipe not found: " + name})
		return
	}

	s.writeJSON(w, http.StatusOK, RecipeResponse{
		Name:        recipe.Name(),
		Ingredients: recipe.Ingredients(),
		MethodSteps: recipe.MethodSteps(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
