package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/immotools/propstack-mcp/internal/propstack"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchPropertiesTool defines the MCP tool schema for property search.
func SearchPropertiesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_properties",
		Description: "Search the property inventory with optional price, plot area, type, and status filters. Returns a reduced overview per property.",
	}
}

// SearchPropertiesHandler executes a property search and returns the curated
// overview subset for each match.
func SearchPropertiesHandler(api PropertyService) mcp.ToolHandlerFor[SearchPropertiesInput, SearchPropertiesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchPropertiesInput) (*mcp.CallToolResult, SearchPropertiesResult, error) {
		if api == nil {
			return nil, SearchPropertiesResult{}, fmt.Errorf("property service is not configured")
		}

		searchResult, err := api.Search(ctx, propstack.SearchParams{
			PriceFrom:    input.PriceFrom,
			PriceTo:      input.PriceTo,
			PlotAreaFrom: input.PlotAreaFrom,
			PropertyType: input.PropertyType,
			Status:       input.Status,
			Page:         input.Page,
			Per:          input.Per,
		})
		if err != nil {
			return toolError(err), SearchPropertiesResult{}, nil
		}

		result := SearchPropertiesResult{
			Properties: overviewEntries(searchResult.Units),
			Total:      searchResult.Total,
		}
		toolResult, err := jsonToolResult(result)
		if err != nil {
			return nil, SearchPropertiesResult{}, err
		}
		return toolResult, result, nil
	}
}

// GetPropertyTool defines the MCP tool schema for a single property lookup.
func GetPropertyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_property",
		Description: "Fetch the full record of one property by its unit id. Media collections are retained; broker contact data is not.",
	}
}

// GetPropertyHandler fetches one fully expanded record. The record passes
// through sanitization with media kept.
func GetPropertyHandler(api PropertyService) mcp.ToolHandlerFor[GetPropertyInput, propstack.Unit] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetPropertyInput) (*mcp.CallToolResult, propstack.Unit, error) {
		if api == nil {
			return nil, nil, fmt.Errorf("property service is not configured")
		}
		if input.UnitID == "" {
			return nil, nil, fmt.Errorf("unit_id is required")
		}

		unit, err := api.UnitByID(ctx, input.UnitID)
		if err != nil {
			return toolError(err), nil, nil
		}

		sanitized := SanitizeUnit(unit, false)
		toolResult, err := jsonToolResult(sanitized)
		if err != nil {
			return nil, nil, err
		}
		return toolResult, sanitized, nil
	}
}

// ListStatusesTool defines the MCP tool schema for the status catalog.
func ListStatusesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_property_statuses",
		Description: "List the property status catalog (id, name, color, position).",
	}
}

// ListStatusesHandler returns the status catalog as-is.
func ListStatusesHandler(api PropertyService) mcp.ToolHandlerFor[ListStatusesInput, StatusCatalogResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListStatusesInput) (*mcp.CallToolResult, StatusCatalogResult, error) {
		if api == nil {
			return nil, StatusCatalogResult{}, fmt.Errorf("property service is not configured")
		}

		statuses, err := api.ListStatuses(ctx)
		if err != nil {
			return toolError(err), StatusCatalogResult{}, nil
		}
		if statuses == nil {
			statuses = []propstack.Status{}
		}

		result := StatusCatalogResult{Statuses: statuses}
		toolResult, err := jsonToolResult(result)
		if err != nil {
			return nil, StatusCatalogResult{}, err
		}
		return toolResult, result, nil
	}
}

// toolError wraps an upstream failure as a caller-visible tool error instead
// of a protocol error. Client errors arrive already credential-scrubbed.
func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: err.Error()},
		},
	}
}

// jsonToolResult renders a payload as pretty-printed JSON text content.
func jsonToolResult(payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}
