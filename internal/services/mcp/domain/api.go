package domain

import (
	"context"

	"github.com/immotools/propstack-mcp/internal/propstack"
)

// PropertyService is the slice of the Propstack client the MCP handlers need.
type PropertyService interface {
	Search(ctx context.Context, params propstack.SearchParams) (propstack.SearchResult, error)
	UnitByID(ctx context.Context, unitID string) (propstack.Unit, error)
	ListStatuses(ctx context.Context) ([]propstack.Status, error)
}
