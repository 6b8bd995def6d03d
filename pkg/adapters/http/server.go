package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/minerva"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/aretw0/minerva/pkg/input"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// AppName is reported by GET /info.
const AppName = "minerva-http"

// DefaultMaxBody bounds the raw request body accepted by POST /chatbot.
const DefaultMaxBody = 64 << 10

// Engine defines what the transport needs from the bot.
type Engine interface {
	Reply(ctx context.Context, userID, message string) (domain.Reply, error)
	Inspect() []domain.Node
}

// Metrics receives request timings and serves the scrape endpoint.
type Metrics interface {
	ObserveRequest(route string, code int, d time.Duration)
	Handler() http.Handler
}

// ChatRequest is the body of POST /chatbot.
type ChatRequest struct {
	User    string `json:"usuario"`
	Message string `json:"mensaje"`
}

// Server serves the bot over HTTP.
type Server struct {
	engine    Engine
	sanitizer input.Sanitizer
	metrics   Metrics
	logger    *slog.Logger
	maxBody   int64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for access and error logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics records request durations and mounts GET /metrics.
func WithMetrics(m Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithMaxInputSize limits the size of the mensaje field in bytes.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.sanitizer.MaxSize = n
	}
}

// WithMaxBody limits the size of the raw request body in bytes.
func WithMaxBody(n int64) Option {
	return func(s *Server) {
		s.maxBody = n
	}
}

// NewServer creates a server around the engine.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		sanitizer: input.Sanitizer{MaxSize: input.DefaultMaxSize},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBody:   DefaultMaxBody,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the chi router with every route and middleware mounted.
func (s *Server) Handler() (http.Handler, error) {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return nil, err
	}
	validator, err := newRequestValidator(doc, s.maxBody)
	if err != nil {
		return nil, err
	}
	apiVersion := doc.Info.Version

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.With(validator.Middleware).Post("/chatbot", s.Chatbot)
	r.Get("/graph", s.GetGraph)
	r.Get("/health", s.GetHealth)
	r.Get("/info", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"app":         AppName,
			"version":     strings.TrimSpace(minerva.Version),
			"api_version": apiVersion,
		})
	})
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		if _, err := w.Write(openapiDocument); err != nil {
			s.logger.Error("openapi document write failed", "error", err)
		}
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	return r, nil
}

// Chatbot handles POST /chatbot.
func (s *Server) Chatbot(w http.ResponseWriter, r *http.Request) {
	var body ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	msg, err := s.sanitizer.Sanitize(body.Message)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, input.ErrInputTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.logger.Warn("input rejected", "error", err, "size", len(body.Message))
		writeError(w, status, err.Error())
		return
	}

	reply, err := s.engine.Reply(r.Context(), body.User, msg)
	if err != nil {
		s.logger.Error("reply failed", "error", err, "user_id", body.User,
			"request_id", middleware.GetReqID(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// GetGraph handles GET /graph.
func (s *Server) GetGraph(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Inspect())
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		elapsed := time.Since(start)

		if s.metrics != nil {
			s.metrics.ObserveRequest(route, status, elapsed)
		}
		s.logger.Info("http request",
			"method", r.Method,
			"route", route,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
