// Package httpapi exposes the floor-plan pipeline over HTTP.
//
// This is a thin adapter: it contains no pipeline logic of its own, only
// request/response marshaling and calls into pkg/pipeline.Runner. All
// generation, scoring, and compliance-check semantics live in the pipeline
// and core packages; this package's job ends at decoding a request body and
// encoding a result.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/floorplanner/internal/compliance"
	"github.com/matzehuels/floorplanner/internal/floorplan"
	"github.com/matzehuels/floorplanner/pkg/observability"
	"github.com/matzehuels/floorplanner/pkg/pipeline"
)

// Server wires the chi router to a pipeline Runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer builds an *http.Server listening on addr and exposing the
// floor-plan API, backed by engine (a pipeline Runner, which carries its own
// cache) for plan generation.
func NewServer(addr string, engine *pipeline.Runner, logger *log.Logger) *http.Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: engine, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Post("/v1/plans", s.handleGeneratePlan)
	r.Post("/v1/plans/{id}/compliance", s.handleCheckCompliance)
	r.Get("/healthz", s.handleHealth)

	return &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// observe records request/response hooks around every handler.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// generatePlanRequest is the POST /v1/plans request body.
type generatePlanRequest struct {
	Brief        json.RawMessage `json:"brief"`
	Jurisdiction string          `json:"jurisdiction,omitempty"`
	Variations   bool            `json:"variations,omitempty"`
	Parallel     bool            `json:"parallel,omitempty"`
	Refresh      bool            `json:"refresh,omitempty"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	opts := pipeline.Options{
		Jurisdiction: compliance.Jurisdiction(req.Jurisdiction),
		Variations:   req.Variations,
		Parallel:     req.Parallel,
		Refresh:      req.Refresh,
		Logger:       s.logger,
	}
	if err := json.Unmarshal(req.Brief, &opts.Brief); err != nil {
		writeError(w, http.StatusBadRequest, "invalid brief")
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// checkComplianceRequest is the POST /v1/plans/{id}/compliance request body.
type checkComplianceRequest struct {
	Plan         json.RawMessage `json:"plan"`
	Jurisdiction string          `json:"jurisdiction"`
}

func (s *Server) handleCheckCompliance(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")

	var req checkComplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var plan floorplan.PlacedPlan
	if err := json.Unmarshal(req.Plan, &plan); err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan")
		return
	}

	observability.Pipeline().OnComplianceCheckStart(r.Context(), planID, req.Jurisdiction)

	engine := compliance.NewEngine()
	engine.SetLogger(s.logger)
	report, err := engine.Check(plan, compliance.ComplianceContext{
		Jurisdiction: compliance.Jurisdiction(req.Jurisdiction),
	})
	if err != nil {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
