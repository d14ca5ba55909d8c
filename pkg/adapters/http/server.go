// Package http exposes the Canopy engine as a JSON API for the dashboard
// collaborator. The engine stays a pure function; every route evaluates a
// submitted snapshot or serves the last stored result.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
)

// Engine defines the interface for the validation core.
type Engine interface {
	Evaluate(c domain.Collections) *canopy.Result
}

// Server wires the engine and the snapshot store behind HTTP handlers.
type Server struct {
	engine Engine
	store  ports.SnapshotStore
	logger *slog.Logger
}

// NewHandler creates the HTTP handler for the engine.
//
// Routes:
//
//	POST /validate                     evaluate a submitted config
//	POST /tenants/{tenant}/validate    evaluate and store the snapshot
//	GET  /tenants/{tenant}/snapshot    last stored snapshot
//	GET  /tenants/{tenant}/gate        deploy-gate verdict with reasons
//	GET  /healthz                      liveness
//	GET  /metrics                      Prometheus metrics
func NewHandler(engine Engine, store ports.SnapshotStore, logger *slog.Logger) http.Handler {
	s := &Server{engine: engine, store: store, logger: logger}

	r := chi.NewRouter()
	r.Post("/validate", s.validate)
	r.Post("/tenants/{tenant}/validate", s.validateTenant)
	r.Get("/tenants/{tenant}/snapshot", s.snapshot)
	r.Get("/tenants/{tenant}/gate", s.gate)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) decodeCollections(w http.ResponseWriter, r *http.Request) (domain.Collections, bool) {
	var c domain.Collections
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return domain.Collections{}, false
	}
	return c, true
}

// validate evaluates a submitted configuration without persisting anything.
func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	c, ok := s.decodeCollections(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.engine.Evaluate(c))
}

// validateTenant evaluates a configuration and stores the resulting
// snapshot for the tenant, replacing the previous one wholesale.
func (s *Server) validateTenant(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	c, ok := s.decodeCollections(w, r)
	if !ok {
		return
	}

	result := s.engine.Evaluate(c)
	if err := s.store.Save(r.Context(), tenant, &result.Snapshot); err != nil {
		s.logger.Error("snapshot save failed", "tenant", tenant, "error", err)
		http.Error(w, "Failed to store snapshot", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// snapshot serves the last stored validation snapshot.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	snap, err := s.store.Load(r.Context(), tenant)
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		http.Error(w, "No snapshot for tenant", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("snapshot load failed", "tenant", tenant, "error", err)
		http.Error(w, "Failed to load snapshot", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// GateResponse is the deploy pipeline's view of a snapshot: the boolean
// verdict plus every error as a human-readable refusal reason.
type GateResponse struct {
	MayDeploy bool             `json:"may_deploy"`
	Errors    []domain.Finding `json:"errors,omitempty"`
}

// gate serves the deploy-gate verdict derived from the stored snapshot.
func (s *Server) gate(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")
	snap, err := s.store.Load(r.Context(), tenant)
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		http.Error(w, "No snapshot for tenant", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("snapshot load failed", "tenant", tenant, "error", err)
		http.Error(w, "Failed to load snapshot", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, GateResponse{
		MayDeploy: snap.MayDeploy,
		Errors:    snap.AllErrors(),
	})
}
