// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command demoserver starts an httpbin-style playground server for
// exercising the fetchx client and CLI.
//
// Usage:
//
//	demoserver [--port=8080]
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogama/fetchx/internal/demoserver"
)

func main() {
	var cli struct {
		Port int `short:"p" default:"8080" help:"Port to listen on."`
	}

	cliCtx := kong.Parse(&cli, kong.UsageOnError())
	cliCtx.FatalIfErrorf(cliCtx.Error)

	cfg := demoserver.DefaultConfig()
	cfg.Port = cli.Port
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	server := demoserver.NewServer(cfg)
	cliCtx.FatalIfErrorf(server.Start())
}
