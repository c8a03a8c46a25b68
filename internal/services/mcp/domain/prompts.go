package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/immotools/propstack-mcp/internal/propstack"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PropertyOverviewPrompt defines the portfolio summarization prompt.
func PropertyOverviewPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "property_overview",
		Description: "Summarize the property portfolio, optionally filtered by status.",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "status",
				Description: "Optional status filter: catalog ids or stage names, comma-separated.",
				Required:    false,
			},
		},
	}
}

// PropertyOverviewPromptHandler fetches the (optionally filtered) inventory,
// sanitizes each record with media removed, and embeds the result in a
// summarization instruction.
func PropertyOverviewPromptHandler(api PropertyService) mcp.PromptHandler {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		if api == nil {
			return nil, fmt.Errorf("property service is not configured")
		}

		status := ""
		if req != nil && req.Params != nil {
			status = req.Params.Arguments["status"]
		}

		searchResult, err := api.Search(ctx, propstack.SearchParams{Status: status})
		if err != nil {
			return nil, fmt.Errorf("property overview failed: %w", err)
		}

		sanitized := make([]propstack.Unit, 0, len(searchResult.Units))
		for _, unit := range searchResult.Units {
			sanitized = append(sanitized, SanitizeUnit(unit, true))
		}

		data, err := json.MarshalIndent(sanitized, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal property overview: %w", err)
		}

		instruction := fmt.Sprintf(
			"The following JSON array describes %d properties from the inventory. "+
				"Summarize the portfolio: group the properties by status and city, "+
				"note price and living space ranges, and point out anything unusual.\n\n%s",
			len(sanitized), data,
		)

		return &mcp.GetPromptResult{
			Description: "Property portfolio overview",
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: instruction},
				},
			},
		}, nil
	}
}
