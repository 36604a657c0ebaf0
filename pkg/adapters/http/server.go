package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/numeral"
	"github.com/aretw0/numeral/pkg/domain"
	"github.com/aretw0/numeral/pkg/ports"
	"github.com/aretw0/numeral/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EvaluateRequest is the body of POST /evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is returned on a successful evaluation.
type EvaluateResponse struct {
	Expression string        `json:"expression"`
	Result     string        `json:"result"`
	System     domain.System `json:"system"`
	Value      int64         `json:"value"`
}

// ErrorResponse is returned on any failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server exposes an Evaluator over HTTP.
type Server struct {
	Evaluator ports.Evaluator
	Logger    *slog.Logger
	gatherer  prometheus.Gatherer
}

// HandlerOption configures the handler.
type HandlerOption func(*Server)

// WithMetrics serves the gatherer's metrics on GET /metrics.
func WithMetrics(g prometheus.Gatherer) HandlerOption {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the evaluator.
func NewHandler(evaluator ports.Evaluator, opts ...HandlerOption) http.Handler {
	server := &Server{
		Evaluator: evaluator,
		Logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Post("/evaluate", server.PostEvaluate)
	r.Get("/evaluate", server.GetEvaluate)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	if server.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PostEvaluate handles the POST /evaluate request.
func (s *Server) PostEvaluate(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		s.Logger.Warn("PostEvaluate: Invalid request body", "error", err)
		return
	}
	s.evaluate(w, r, body.Expression)
}

// GetEvaluate handles GET /evaluate?expr=...
func (s *Server) GetEvaluate(w http.ResponseWriter, r *http.Request) {
	expr := r.URL.Query().Get("expr")
	if expr == "" {
		s.writeError(w, http.StatusBadRequest, "missing query parameter: expr")
		return
	}
	s.evaluate(w, r, expr)
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request, input string) {
	// Sanitize Input (Global Policy)
	clean, err := runner.SanitizeInput(input)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		s.Logger.Warn("Evaluate: Input rejected", "error", err, "size", len(input))
		return
	}

	res, err := s.Evaluator.Evaluate(r.Context(), clean)
	if err != nil {
		status := StatusFor(err)
		if status == http.StatusInternalServerError {
			s.Logger.Error("Evaluate failed", "input", clean, "error", err)
		}
		s.writeError(w, status, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, EvaluateResponse{
		Expression: res.Input,
		Result:     res.Output,
		System:     res.System,
		Value:      res.Value,
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "numeral-http",
		"version": strings.TrimSpace(numeral.Version),
	})
}

// StatusFor maps evaluation errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidExpression), errors.Is(err, domain.ErrNotRepresentable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDivisionByZero), errors.Is(err, domain.ErrUnknownOperator):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
