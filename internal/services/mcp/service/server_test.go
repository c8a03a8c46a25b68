package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/immotools/propstack-mcp/internal/propstack"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type fakePropertyService struct {
	searchResult propstack.SearchResult
	unit         propstack.Unit
	unitErr      error
	statuses     []propstack.Status
}

func (f *fakePropertyService) Search(context.Context, propstack.SearchParams) (propstack.SearchResult, error) {
	return f.searchResult, nil
}

func (f *fakePropertyService) UnitByID(context.Context, string) (propstack.Unit, error) {
	return f.unit, f.unitErr
}

func (f *fakePropertyService) ListStatuses(context.Context) ([]propstack.Status, error) {
	return f.statuses, nil
}

// connectTestClient serves the server over in-memory transports and returns
// a connected client session.
func connectTestClient(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientCtx, clientCancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(clientCancel)
	session, err := client.Connect(clientCtx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func TestNewRegistersSurface(t *testing.T) {
	api := &fakePropertyService{
		searchResult: propstack.SearchResult{Units: []propstack.Unit{}, Total: 0},
		statuses:     []propstack.Status{{ID: 133880, Name: "Vermarktung"}},
	}
	server := New(api, nil)
	session := connectTestClient(t, server)
	ctx := context.Background()

	t.Run("tools", func(t *testing.T) {
		tools, err := session.ListTools(ctx, nil)
		if err != nil {
			t.Fatalf("list tools: %v", err)
		}
		want := map[string]bool{
			"search_properties":      false,
			"get_property":           false,
			"list_property_statuses": false,
		}
		for _, tool := range tools.Tools {
			if _, ok := want[tool.Name]; ok {
				want[tool.Name] = true
			}
		}
		for name, seen := range want {
			if !seen {
				t.Errorf("tool %q not registered", name)
			}
		}
	})

	t.Run("resources", func(t *testing.T) {
		resources, err := session.ListResources(ctx, nil)
		if err != nil {
			t.Fatalf("list resources: %v", err)
		}
		if len(resources.Resources) != 2 {
			t.Fatalf("expected 2 static resources, got %d", len(resources.Resources))
		}

		templates, err := session.ListResourceTemplates(ctx, nil)
		if err != nil {
			t.Fatalf("list resource templates: %v", err)
		}
		if len(templates.ResourceTemplates) != 2 {
			t.Fatalf("expected 2 resource templates, got %d", len(templates.ResourceTemplates))
		}
	})

	t.Run("prompt", func(t *testing.T) {
		prompts, err := session.ListPrompts(ctx, nil)
		if err != nil {
			t.Fatalf("list prompts: %v", err)
		}
		if len(prompts.Prompts) != 1 || prompts.Prompts[0].Name != "property_overview" {
			t.Fatalf("unexpected prompts %+v", prompts.Prompts)
		}
	})

	t.Run("status tool round trip", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "list_property_statuses",
			Arguments: map[string]any{},
		})
		if err != nil {
			t.Fatalf("call tool: %v", err)
		}
		if result.IsError {
			t.Fatal("unexpected tool error")
		}
		text, ok := result.Content[0].(*mcp.TextContent)
		if !ok {
			t.Fatalf("expected text content, got %T", result.Content[0])
		}
		if !strings.Contains(text.Text, "Vermarktung") {
			t.Errorf("expected catalog in response, got %q", text.Text)
		}
	})

	t.Run("resource round trip", func(t *testing.T) {
		result, err := session.ReadResource(ctx, &mcp.ReadResourceParams{
			URI: "propstack://properties/all",
		})
		if err != nil {
			t.Fatalf("read resource: %v", err)
		}
		if len(result.Contents) != 1 || result.Contents[0].MIMEType != "application/json" {
			t.Fatalf("unexpected contents %+v", result.Contents)
		}
	})
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	server := New(&fakePropertyService{}, nil)
	err := server.Run(context.Background(), Config{Transport: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected error for unknown transport")
	}
	if !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Errorf("expected transport name in error, got %v", err)
	}
}

func TestRunRequiresConfiguredServer(t *testing.T) {
	tests := []struct {
		name   string
		server *Server
	}{
		{name: "nil server", server: nil},
		{name: "missing mcp server", server: &Server{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.server.Run(context.Background(), Config{}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
