// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package demoserver implements a small HTTP playground to point the
// fetchx client and CLI at. Its endpoints are modeled on the usual
// httpbin shapes: /status/{code}, /echo, /delay/{duration}, /uuid.
package demoserver

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// maxDelay caps the /delay endpoint so a stray request cannot pin a
// server goroutine indefinitely.
const maxDelay = 10 * time.Second

// Server is the demo server. It implements http.Handler.
type Server struct {
	cfg    Config
	router chi.Router
	logger *slog.Logger
	tracer trace.Tracer
}

// NewServer creates a demo server from the given configuration.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("demoserver")
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		logger: logger,
		tracer: tracer,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.observe)

	r.HandleFunc("/status/{code}", s.handleStatus)
	r.HandleFunc("/echo", s.handleEcho)
	r.Get("/delay/{duration}", s.handleDelay)
	r.Get("/uuid", s.handleUUID)
}

// observe starts a span for the request and logs it once it has been
// served.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := s.tracer.Start(r.Context(), "demoserver.request")
		defer span.End()
		span.SetAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.target", r.URL.Path),
		)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: maxDelay + 5*time.Second,
	}
}

// Start listens on the configured port and serves until the listener
// fails.
func (s *Server) Start() error {
	srv := s.HTTPServer()
	s.logger.Info("demoserver listening", "addr", srv.Addr)
	return srv.ListenAndServe()
}

// handleStatus responds with the requested status code and a small
// text body naming it. Any method is accepted.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil || code < 100 || code > 599 {
		writeError(w, http.StatusBadRequest, "status code must be an integer in [100, 599]")
		return
	}

	writeText(w, code, fmt.Sprintf("%d %s\n", code, http.StatusText(code)))
}

// handleEcho responds 200 with a copy of the request body.
func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// handleDelay sleeps for the requested duration before responding.
// The delay is applied on the server side: it exercises slow
// responses, not client timeouts.
func (s *Server) handleDelay(w http.ResponseWriter, r *http.Request) {
	d, err := time.ParseDuration(chi.URLParam(r, "duration"))
	if err != nil || d < 0 {
		writeError(w, http.StatusBadRequest, "duration must be a non-negative Go duration, e.g. 250ms")
		return
	}
	if d > maxDelay {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("duration must not exceed %s", maxDelay))
		return
	}

	select {
	case <-time.After(d):
	case <-r.Context().Done():
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf("slept %s\n", d))
}

// handleUUID responds with a freshly generated UUID.
func (s *Server) handleUUID(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"uuid": uuid.NewString()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
