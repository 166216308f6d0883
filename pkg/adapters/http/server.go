// Package http exposes the nuskell compiler as a JSON API over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jphuse/nuskell"
	"github.com/jphuse/nuskell/pkg/domain"
	"github.com/jphuse/nuskell/pkg/observability"
	"github.com/jphuse/nuskell/pkg/ports"
)

// Engine defines the interface the server needs from the compiler core.
type Engine interface {
	CompileString(src string) (*domain.System, error)
}

// Server wraps the engine and an optional system store.
type Server struct {
	Engine  Engine
	Store   ports.SystemStore
	Metrics *observability.Metrics
}

// CompileRequest is the body of POST /compile and POST /systems.
type CompileRequest struct {
	// ID names the stored system (POST /systems only).
	ID string `json:"id,omitempty"`
	// CRN is the reaction network source text.
	CRN string `json:"crn"`
}

// CompileResponse wraps a compiled system. ID is set on the /systems routes.
type CompileResponse struct {
	ID     string         `json:"id,omitempty"`
	System *domain.System `json:"system"`
}

// NewHandler creates the HTTP handler. Store may be nil, in which case the
// /systems routes respond 501.
func NewHandler(engine Engine, store ports.SystemStore, metrics *observability.Metrics) http.Handler {
	server := &Server{Engine: engine, Store: store, Metrics: metrics}
	r := chi.NewRouter()

	r.Get("/healthz", server.Health)
	r.Post("/compile", server.Compile)
	r.Post("/systems", server.CreateSystem)
	r.Get("/systems", server.ListSystems)
	r.Get("/systems/{id}", server.GetSystem)
	r.Delete("/systems/{id}", server.DeleteSystem)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
	}

	return r
}

func (s *Server) compile(src string) (*domain.System, error) {
	start := time.Now()
	sys, err := s.Engine.CompileString(src)
	if s.Metrics != nil {
		n := 0
		if sys != nil {
			n = len(sys.Complexes)
		}
		s.Metrics.ObserveCompile(time.Since(start), n, err)
	}
	return sys, err
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"name":    "nuskell",
		"version": strings.TrimSpace(nuskell.Version),
	})
}

// Compile handles POST /compile: one-shot CRN translation.
func (s *Server) Compile(w http.ResponseWriter, r *http.Request) {
	var body CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Compile: invalid request body", "err", err)
		return
	}

	sys, err := s.compile(body.CRN)
	if err != nil {
		http.Error(w, fmt.Sprintf("Compile error: %v", err), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, CompileResponse{System: sys})
}

// CreateSystem handles POST /systems: compile and persist.
func (s *Server) CreateSystem(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "No system store configured", http.StatusNotImplemented)
		return
	}

	var body CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.ID == "" {
		body.ID = uuid.NewString()
	}

	sys, err := s.compile(body.CRN)
	if err != nil {
		http.Error(w, fmt.Sprintf("Compile error: %v", err), http.StatusUnprocessableEntity)
		return
	}
	if err := s.Store.Save(r.Context(), body.ID, sys); err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("CreateSystem: save failed", "id", body.ID, "err", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, CompileResponse{ID: body.ID, System: sys})
}

// GetSystem handles GET /systems/{id}.
func (s *Server) GetSystem(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "No system store configured", http.StatusNotImplemented)
		return
	}

	id := chi.URLParam(r, "id")
	sys, err := s.Store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSystemNotFound) {
			http.Error(w, "System not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, CompileResponse{System: sys})
}

// DeleteSystem handles DELETE /systems/{id}.
func (s *Server) DeleteSystem(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "No system store configured", http.StatusNotImplemented)
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.Store.Delete(r.Context(), id); err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSystems handles GET /systems.
func (s *Server) ListSystems(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "No system store configured", http.StatusNotImplemented)
		return
	}

	ids, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, map[string][]string{"systems": ids})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}
