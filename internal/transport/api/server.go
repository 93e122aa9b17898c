package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/sandevgo/memberqa/internal/core"
	"github.com/sandevgo/memberqa/pkg/log"
)

const (
	maxRequestBytes = 64 << 10
	shutdownTimeout = 10 * time.Second
)

type Asker interface {
	Ask(ctx context.Context, question string) (core.Result, error)
	Refresh()
}

// Server exposes the pipeline over HTTP.
type Server struct {
	asker  Asker
	logger zerolog.Logger
	http   *http.Server
}

// NewServer builds the HTTP server. Request loggers derive from the logger
// carried by ctx.
func NewServer(ctx context.Context, addr string, asker Asker) *Server {
	s := &Server{asker: asker, logger: *log.FromCtx(ctx)}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"Content-Type", "Accept", requestIDHeader},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		Debug:          false,
	}).Handler)
	router.Use(s.middlewares()...)

	router.Get("/health", s.healthHandler)
	router.Post("/ask", s.askHandler)
	router.Post("/refresh", s.refreshHandler)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.http.BaseContext = func(net.Listener) context.Context { return ctx }

	log.FromCtx(ctx).Info().Str("addr", s.http.Addr).Msg("http server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests. ctx is usually already cancelled, so the
// drain gets its own deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(drainCtx)
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) askHandler(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question is required"})
		return
	}

	res, err := s.asker.Ask(r.Context(), req.Question)
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("ask failed")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "failed to load messages"})
		return
	}

	writeJSON(w, http.StatusOK, askResponse{Answer: res.Answer})
}

func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	s.asker.Refresh()
	log.FromCtx(r.Context()).Info().Msg("corpus cache invalidated")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
