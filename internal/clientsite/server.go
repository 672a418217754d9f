// Package clientsite is a reference implementation of the
// client-service API the checker talks to: the three deadoralive
// endpoints, plus a results listing for inspection. It exists for
// local development and end-to-end tests; a real deployment points the
// checker at a catalog site that implements the same API.
package clientsite

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/deadoralive/checker/internal/domain"
	"github.com/deadoralive/checker/internal/repo"
)

type Server struct {
	Logger *zap.Logger
	Store  repo.ResourceStore
	APIKey string // empty disables the Authorization check
}

func NewServer(l *zap.Logger, store repo.ResourceStore, apikey string) *Server {
	return &Server{Logger: l, Store: store, APIKey: apikey}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/deadoralive", func(r chi.Router) {
		r.Use(s.requireKey)
		r.Get("/get_resources_to_check", s.handleResourcesToCheck)
		r.Get("/get_url_for_resource_id", s.handleURLForResource)
		r.Post("/upsert", s.handleUpsert)
		r.Get("/results", s.handleResults)
	})

	return r
}

// requireKey matches the checker's auth model: the raw API key travels
// in the Authorization header, with no scheme prefix.
func (s *Server) requireKey(next http.Handler) http.Handler {
	if s.APIKey == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != s.APIKey {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"forbidden"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleResourcesToCheck(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.IDsToCheck(r.Context())
	if err != nil {
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, ids)
}

func (s *Server) handleURLForResource(w http.ResponseWriter, r *http.Request) {
	id := domain.ResourceID(r.URL.Query().Get("resource_id"))
	if id == "" {
		http.Error(w, "resource_id required", http.StatusBadRequest)
		return
	}
	u, err := s.Store.URLFor(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "unknown resource", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "lookup error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, u)
}

func (s *Server) handleUpsert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id := domain.ResourceID(q.Get("resource_id"))
	if id == "" {
		http.Error(w, "resource_id required", http.StatusBadRequest)
		return
	}
	alive, err := strconv.ParseBool(q.Get("alive"))
	if err != nil {
		http.Error(w, "alive must be a boolean", http.StatusBadRequest)
		return
	}

	result := domain.ProbeResult{
		URL:    q.Get("url"),
		Alive:  alive,
		Reason: q.Get("reason"),
	}
	if v := q.Get("status"); v != "" {
		code, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "status must be an integer", http.StatusBadRequest)
			return
		}
		result.Status = &code
	}

	if err := s.Store.UpsertResult(r.Context(), id, result); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "unknown resource", http.StatusNotFound)
			return
		}
		http.Error(w, "upsert error", http.StatusInternalServerError)
		return
	}

	s.Logger.Info("result_upserted",
		zap.String("resource_id", string(id)),
		zap.String("url", result.URL),
		zap.Bool("alive", result.Alive),
	)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	all, err := s.Store.Results(r.Context())
	if err != nil {
		http.Error(w, "results error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, all)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
