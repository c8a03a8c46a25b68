package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/immotools/propstack-mcp/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "propstack-mcp"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP runtime.
type Config struct {
	Transport TransportKind
	// HTTPAddr is the HTTP listen address; only used for the HTTP transport.
	HTTPAddr string
}

// Server hosts the MCP server over a property API client.
type Server struct {
	mcpServer *mcp.Server
	logger    *slog.Logger
}

// New creates a configured MCP server with all property tools, resources,
// and prompts registered against the given API client.
func New(api domain.PropertyService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, domain.SearchPropertiesTool(), domain.SearchPropertiesHandler(api))
	mcp.AddTool(mcpServer, domain.GetPropertyTool(), domain.GetPropertyHandler(api))
	mcp.AddTool(mcpServer, domain.ListStatusesTool(), domain.ListStatusesHandler(api))

	mcpServer.AddResource(domain.PropertiesAllResource(), domain.PropertiesAllResourceHandler(api))
	mcpServer.AddResource(domain.PropertiesActiveResource(), domain.PropertiesActiveResourceHandler(api))
	mcpServer.AddResourceTemplate(domain.PropertySingleResourceTemplate(), domain.PropertySingleResourceHandler(api))
	mcpServer.AddResourceTemplate(domain.PropertySingleAllResourceTemplate(), domain.PropertySingleAllResourceHandler(api))

	mcpServer.AddPrompt(domain.PropertyOverviewPrompt(), domain.PropertyOverviewPromptHandler(api))

	return &Server{mcpServer: mcpServer, logger: logger}
}

// Run serves MCP on the configured transport and blocks until the context is
// cancelled or the transport fails.
func (s *Server) Run(ctx context.Context, cfg Config) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("mcp server is not configured")
	}
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		s.logger.Info("serving MCP", "transport", TransportStdio)
		return s.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return s.runHTTP(ctx, cfg.HTTPAddr)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// runHTTP serves the same MCP handlers over the SDK streamable HTTP
// transport and shuts the listener down when the context is cancelled.
func (s *Server) runHTTP(ctx context.Context, addr string) error {
	if addr == "" {
		addr = "localhost:8081"
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()
	s.logger.Info("serving MCP", "transport", TransportHTTP, "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
