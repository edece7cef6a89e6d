// Package http exposes the solver, the puzzle archive and the catalog over a
// JSON API, with per-session SSE streaming of deduction events and a
// Prometheus /metrics endpoint.
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
	"github.com/oapi-codegen/runtime"

	"github.com/aretw0/solstice"
	"github.com/aretw0/solstice/internal/logging"
	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/ports"
)

// Config wires the handler's collaborators. Solver is required; Archive,
// Catalog and Metrics routes are only mounted when their dependency is set.
type Config struct {
	Solver  ports.Solver
	Archive ports.PuzzleStore
	Catalog ports.PuzzleCatalog
	Metrics *Metrics
	Logger  *slog.Logger
}

// Server holds the handler state shared across requests.
type Server struct {
	Solver  ports.Solver
	Archive ports.PuzzleStore
	Catalog ports.PuzzleCatalog
	Streams *StreamManager
	Metrics *Metrics
	Logger  *slog.Logger
}

// NewHandler creates the HTTP handler for the given configuration.
func NewHandler(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	server := &Server{
		Solver:  cfg.Solver,
		Archive: cfg.Archive,
		Catalog: cfg.Catalog,
		Streams: NewStreamManager(logger),
		Metrics: cfg.Metrics,
		Logger:  logger,
	}

	r := chi.NewRouter()

	r.Post("/validate", server.Validate)
	r.Post("/step", server.NextStep)
	r.Post("/solve", server.Solve)
	r.Post("/apply", server.ApplyStep)
	r.Get("/events", server.SubscribeEvents)

	if server.Archive != nil {
		r.Get("/puzzles", server.ListPuzzles)
		r.Post("/puzzles", server.CreatePuzzle)
		r.Get("/puzzles/{id}", server.GetPuzzle)
		r.Delete("/puzzles/{id}", server.DeletePuzzle)
	}
	if server.Catalog != nil {
		r.Get("/catalog", server.ListCatalog)
		r.Get("/catalog/{id}", server.GetCatalogPuzzle)
	}

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics.Handler())
	}

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			logger.Error("Failed to load OpenAPI spec", "err", err)
			return
		}
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	var handler http.Handler = r
	if server.Metrics != nil {
		handler = server.Metrics.Instrument(handler)
	}
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Solstice API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// -- Wire types --

// PositionRequest is the grid-plus-constraints body shared by the solver endpoints.
type PositionRequest struct {
	Grid        domain.Grid          `json:"grid"`
	Constraints domain.ConstraintSet `json:"constraints"`
}

// SolveRequest optionally names a session; steps of the run are then broadcast
// to /events subscribers of that session.
type SolveRequest struct {
	PositionRequest
	SessionID string `json:"sessionId,omitempty"`
}

// ApplyRequest carries a grid and one step to apply to it.
type ApplyRequest struct {
	Grid domain.Grid `json:"grid"`
	Step domain.Step `json:"step"`
}

// StepResponse is the answer to POST /step: found=false means no rule fires.
type StepResponse struct {
	Found bool         `json:"found"`
	Step  *domain.Step `json:"step,omitempty"`
}

// ErrorResponse is the JSON error envelope. Violations is only populated for
// illegal starting positions.
type ErrorResponse struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations,omitempty"`
}

// -- Solver endpoints --

// Validate handles the POST /validate request.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	var body PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.badRequest(w, "validate", err)
		return
	}

	report, err := s.Solver.ValidateStart(body.Grid, body.Constraints)
	if err != nil {
		s.writeError(w, "validate", err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// NextStep handles the POST /step request.
func (s *Server) NextStep(w http.ResponseWriter, r *http.Request) {
	var body PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.badRequest(w, "step", err)
		return
	}

	step, ok, err := s.Solver.NextStep(body.Grid, body.Constraints)
	if err != nil {
		s.writeError(w, "step", err)
		return
	}
	resp := StepResponse{Found: ok}
	if ok {
		resp.Step = &step
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// Solve handles the POST /solve request.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.badRequest(w, "solve", err)
		return
	}

	solution, err := s.Solver.Solve(body.Grid, body.Constraints)
	if err != nil {
		s.writeError(w, "solve", err)
		return
	}

	if body.SessionID != "" {
		s.broadcastSolution(body.SessionID, solution)
	}
	s.writeJSON(w, http.StatusOK, solution)
}

// ApplyStep handles the POST /apply request.
func (s *Server) ApplyStep(w http.ResponseWriter, r *http.Request) {
	var body ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.badRequest(w, "apply", err)
		return
	}

	next, err := domain.ApplyStep(body.Grid, body.Step)
	if err != nil {
		s.writeError(w, "apply", err)
		return
	}
	s.writeJSON(w, http.StatusOK, next)
}

// broadcastSolution pushes each step and a final summary to the session's
// SSE subscribers.
func (s *Server) broadcastSolution(sessionID string, solution *domain.Solution) {
	for i := range solution.Steps {
		data, err := json.Marshal(solution.Steps[i])
		if err != nil {
			continue
		}
		s.Streams.Broadcast(sessionID, StreamEvent{Name: "step", Data: string(data)})
	}

	summary := struct {
		Solved bool        `json:"solved"`
		Steps  int         `json:"steps"`
		Grid   domain.Grid `json:"grid"`
	}{solution.Solved, len(solution.Steps), solution.Grid}
	if data, err := json.Marshal(summary); err == nil {
		s.Streams.Broadcast(sessionID, StreamEvent{Name: "solve", Data: string(data)})
	}
}

// -- Archive endpoints --

// ListPuzzles handles the GET /puzzles request.
func (s *Server) ListPuzzles(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Archive.List(r.Context())
	if err != nil {
		s.writeError(w, "puzzles", err)
		return
	}

	metas := make([]domain.PuzzleMeta, 0, len(ids))
	for _, id := range ids {
		p, err := s.Archive.Load(r.Context(), id)
		if errors.Is(err, domain.ErrPuzzleNotFound) {
			// Deleted between List and Load.
			continue
		}
		if err != nil {
			s.writeError(w, "puzzles", err)
			return
		}
		metas = append(metas, p.Meta())
	}
	s.writeJSON(w, http.StatusOK, metas)
}

// CreatePuzzle handles the POST /puzzles request.
func (s *Server) CreatePuzzle(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.badRequest(w, "puzzles", err)
		return
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if err := p.Validate(); err != nil {
		s.writeError(w, "puzzles", err)
		return
	}

	if err := s.Archive.Save(r.Context(), p); err != nil {
		s.writeError(w, "puzzles", err)
		return
	}
	s.Logger.Info("puzzle stored", "puzzle_id", p.ID, "size", p.Grid.Size())

	w.Header().Set("Location", "/puzzles/"+p.ID)
	s.writeJSON(w, http.StatusCreated, p)
}

// GetPuzzle handles the GET /puzzles/{id} request.
func (s *Server) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	p, err := s.Archive.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, "puzzles", err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// DeletePuzzle handles the DELETE /puzzles/{id} request.
func (s *Server) DeletePuzzle(w http.ResponseWriter, r *http.Request) {
	if err := s.Archive.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, "puzzles", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// -- Catalog endpoints --

// ListCatalog handles the GET /catalog request.
func (s *Server) ListCatalog(w http.ResponseWriter, r *http.Request) {
	puzzles, err := s.Catalog.List(r.Context())
	if err != nil {
		s.writeError(w, "catalog", err)
		return
	}
	metas := make([]domain.PuzzleMeta, len(puzzles))
	for i, p := range puzzles {
		metas[i] = p.Meta()
	}
	s.writeJSON(w, http.StatusOK, metas)
}

// GetCatalogPuzzle handles the GET /catalog/{id} request.
func (s *Server) GetCatalogPuzzle(w http.ResponseWriter, r *http.Request) {
	p, err := s.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, "catalog", err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// -- Service endpoints --

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "solstice-http",
		"version":     strings.TrimSpace(solstice.Version),
		"api_version": apiVersion,
	})
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	var sessionID, watch *string
	if err := runtime.BindQueryParameter("form", true, false, "session_id", r.URL.Query(), &sessionID); err != nil {
		s.badRequest(w, "events", err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "watch", r.URL.Query(), &watch); err != nil {
		s.badRequest(w, "events", err)
		return
	}

	// Catalog change feed (no session)
	if sessionID == nil {
		watcher, ok := s.Catalog.(ports.Watchable)
		if !ok {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "session_id is required: no watchable catalog configured"})
			return
		}
		s.Logger.Info("SSE: Subscribing to catalog changes")
		events, err := watcher.Watch(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("Watch error: %v", err), http.StatusInternalServerError)
			return
		}

		setSSEHeaders(w)
		fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
		flusher.Flush()

		for {
			select {
			case <-r.Context().Done():
				return
			case id, ok := <-events:
				if !ok {
					return
				}
				fmt.Fprintf(w, "event: catalog\ndata: %s\n\n", id)
				flusher.Flush()
			}
		}
	}

	// Session-based subscription (deduction events)
	s.Logger.Info("SSE: Subscribing to session events", "session_id", *sessionID)

	ch, cancel := s.Streams.Subscribe(*sessionID)
	defer cancel()

	setSSEHeaders(w)
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	// Parse 'watch' filter
	keep := map[string]bool{}
	if watch != nil {
		for _, name := range strings.Split(*watch, ",") {
			keep[strings.TrimSpace(name)] = true
		}
	}

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE client disconnected", "session_id", *sessionID)
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			if len(keep) > 0 && !keep[evt.Name] {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Name, evt.Data)
			flusher.Flush()
		}
	}
}

func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}

// -- Helpers --

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) badRequest(w http.ResponseWriter, route string, err error) {
	s.Logger.Warn("invalid request body", "route", route, "err", err)
	s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
}

// writeError maps domain errors onto status codes: malformed input 400,
// illegal start 422 with the violation list, unknown puzzle 404, rest 500.
func (s *Server) writeError(w http.ResponseWriter, route string, err error) {
	var illegal *domain.IllegalStartError
	switch {
	case errors.As(err, &illegal):
		s.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:      "illegal starting position",
			Violations: illegal.Violations,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPuzzleNotFound):
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		s.Logger.Error("request failed", "route", route, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
