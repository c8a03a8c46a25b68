package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	mcpcmd "github.com/immotools/propstack-mcp/internal/cmd/mcp"
	"github.com/immotools/propstack-mcp/internal/platform/config"
	"github.com/immotools/propstack-mcp/internal/platform/logging"
)

// main starts the MCP server on stdio or HTTP.
func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := mcpcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	// Logs go to stderr: stdout belongs to the stdio MCP transport.
	slog.SetDefault(logging.New(os.Stderr, slog.LevelInfo))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpcmd.Run(ctx, cfg); err != nil {
		config.Exitf("propstack-mcp: %v", err)
	}
}
