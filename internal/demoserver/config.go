// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package demoserver

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Config holds configuration for the demo server.
type Config struct {
	// Port is the port on which the demo server listens.
	Port int

	// Logger receives request logs. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Tracer records a span per handled request. If nil, spans are
	// discarded.
	Tracer trace.Tracer
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Port: 8080,
	}
}
