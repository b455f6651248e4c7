package agent

import (
	"encoding/json"
	"errors"
	"mindgames/engine"
	"mindgames/game"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type searchRequest struct {
	State    json.RawMessage `json:"state"`
	Player   int             `json:"player"`
	MaxDepth *int            `json:"max_depth"`
}

type evaluateRequest struct {
	State  json.RawMessage `json:"state"`
	Player int             `json:"player"`
}

type server struct {
	engine *engine.Engine
}

// NewServer exposes the engine over HTTP JSON.
func NewServer(e *engine.Engine) http.Handler {
	s := server{engine: e}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)

	r.Post("/search", s.handleSearch)
	r.Post("/evaluate", s.handleEvaluate)
	r.Get("/version", s.handleVersion)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed: "+r.Method)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})

	return r
}

// StartAgentServer serves the engine on addr until the listener fails.
func StartAgentServer(addr string, e *engine.Engine) error {
	log.Info().Msgf("starting agent server on %s", addr)
	return http.ListenAndServe(addr, NewServer(e))
}

func (s server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var payload searchRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad request: "+err.Error())
		return
	}
	depth := s.engine.Depth()
	if payload.MaxDepth != nil {
		depth = *payload.MaxDepth
	}

	response, err := s.engine.ComputeMove(payload.State, payload.Player, depth)
	if err != nil {
		writeError(w, statusOf(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (s server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var payload evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad request: "+err.Error())
		return
	}

	value, err := s.engine.EvaluateState(payload.State, payload.Player)
	if err != nil {
		writeError(w, statusOf(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"evaluation": value})
}

func (s server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.engine.Version()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, game.ErrDecode), errors.Is(err, game.ErrPlayer), errors.Is(err, engine.ErrDepth):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
