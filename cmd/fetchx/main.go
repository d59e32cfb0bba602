// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command fetchx is a small curl-like front end for the fetchx
// library.
//
// Usage:
//
//	fetchx https://example.com
//	fetchx -X POST -d 'payload' https://example.com/things
//	fetchx --fail https://example.com/maybe-missing
//	fetchx --rps 2 --burst 1 --verbose https://example.com
//
// The response body is written to stdout. A status line is written to
// stderr when stderr is a terminal, and the execution lifecycle is
// logged to stderr with --verbose.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/rosshhun/gonormalizer"

	"github.com/gogama/fetchx"
	"github.com/gogama/fetchx/request"
	"github.com/gogama/fetchx/throttle"
	"github.com/gogama/fetchx/transport"
)

func main() {
	var cli struct {
		URL     string `arg:"" required:"" help:"URL to fetch"`
		Method  string `short:"X" default:"GET" help:"HTTP method to use"`
		Body    string `short:"d" optional:"" help:"Request body to send"`
		Fail    bool   `short:"f" help:"Exit non-zero on HTTP errors (non-2XX status)"`
		RPS     int    `help:"Throttle outgoing requests to this many per second (0 disables)"`
		Burst   int    `default:"1" help:"Throttle burst size when --rps is set"`
		Verbose bool   `short:"v" help:"Log the execution lifecycle to stderr"`
	}

	cliCtx := kong.Parse(&cli, kong.UsageOnError())
	cliCtx.FatalIfErrorf(cliCtx.Error)

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	url := cli.URL
	if n, err := gonormalizer.Normalize(url); err == nil {
		url = n
	} else {
		logger.Debug("url normalization failed, using raw url", "url", url, "error", err)
	}

	opener := transport.Default
	if cli.RPS > 0 {
		var err error
		opener, err = throttle.NewOpener(cli.RPS, cli.Burst, func() *slog.Logger { return logger }, nil)
		cliCtx.FatalIfErrorf(err)
	}

	handlers := &fetchx.HandlerGroup{}
	handlers.PushBack(fetchx.BeforeSend, fetchx.HandlerFunc(func(_ fetchx.Event, e *request.Execution) {
		logger.Debug("sending request", "id", e.ID, "method", e.Plan.Method, "url", e.Plan.URL)
	}))
	handlers.PushBack(fetchx.AfterReadyStateChange, fetchx.HandlerFunc(func(_ fetchx.Event, e *request.Execution) {
		logger.Debug("ready state change", "id", e.ID, "changes", e.StateChanges)
	}))
	handlers.PushBack(fetchx.AfterExecutionEnd, fetchx.HandlerFunc(func(_ fetchx.Event, e *request.Execution) {
		logger.Debug("execution ended", "id", e.ID, "state", e.State.Name(), "duration", e.Duration().String())
	}))

	cl := &fetchx.Client{Transport: opener, Handlers: handlers}

	p := request.For(cli.Method, url)
	if cli.Body != "" {
		p.WithBody(cli.Body)
	}

	start := time.Now()
	resp, err := cl.Do(p)
	if err != nil {
		logger.Error("request failed", "error", err)
		os.Exit(1)
	}

	if cli.Fail {
		if _, err := resp.RejectOnFailure(); err != nil {
			logger.Error("server returned an error status", "error", err)
			os.Exit(22)
		}
	}

	if isatty.IsTerminal(os.Stderr.Fd()) || cli.Verbose {
		fmt.Fprintf(os.Stderr, "HTTP %d %s (%d bytes in %s)\n",
			resp.StatusCode, resp.StatusText, len(resp.Text),
			time.Since(start).Round(time.Millisecond))
	}

	fmt.Print(resp.Text)
	if len(resp.Text) > 0 && !strings.HasSuffix(resp.Text, "\n") && isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println()
	}
}
