// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/immotools/propstack-mcp/internal/platform/config"
	"github.com/immotools/propstack-mcp/internal/platform/otel"
	"github.com/immotools/propstack-mcp/internal/propstack"
	"github.com/immotools/propstack-mcp/internal/services/mcp/service"
)

// Config holds MCP command configuration. The API key is env-only on
// purpose: secrets do not belong in argv.
type Config struct {
	APIKey    string `env:"PROPSTACK_API_KEY"`
	Transport string `env:"PROPSTACK_MCP_TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"PROPSTACK_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "propstack-mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Warn("otel shutdown", "error", err)
		}
	}()

	client, err := propstack.New(cfg.APIKey)
	if err != nil {
		return err
	}

	server := service.New(client, slog.Default())
	return server.Run(ctx, service.Config{
		Transport: service.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
	})
}
