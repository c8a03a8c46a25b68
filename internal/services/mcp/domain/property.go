package domain

import "github.com/immotools/propstack-mcp/internal/propstack"

// SearchPropertiesInput represents the MCP tool input for property search.
type SearchPropertiesInput struct {
	PriceFrom    *int   `json:"price_from,omitempty" jsonschema:"minimum purchase price in euros"`
	PriceTo      *int   `json:"price_to,omitempty" jsonschema:"maximum purchase price in euros"`
	PlotAreaFrom *int   `json:"plot_area_from,omitempty" jsonschema:"minimum plot area in square meters"`
	PropertyType string `json:"property_type,omitempty" jsonschema:"free-text property type filter"`
	Status       string `json:"status,omitempty" jsonschema:"status filter: catalog ids or stage names (Akquise, Vorbereitung, Vermarktung, Reserviert, Abgewickelt), comma-separated"`
	Page         int    `json:"page,omitempty" jsonschema:"result page, starting at 1"`
	Per          int    `json:"per,omitempty" jsonschema:"page size (default 500)"`
}

// SearchPropertiesResult represents the MCP tool output for property search.
type SearchPropertiesResult struct {
	Properties []OverviewEntry `json:"properties"`
	Total      int             `json:"total" jsonschema:"total matching units reported by the upstream"`
}

// GetPropertyInput represents the MCP tool input for a single property lookup.
type GetPropertyInput struct {
	UnitID string `json:"unit_id" jsonschema:"external unit identifier of the property"`
}

// ListStatusesInput represents the (empty) MCP tool input for the status
// catalog listing.
type ListStatusesInput struct{}

// StatusCatalogResult represents the MCP tool output for the status catalog.
// Catalog entries carry no personal data and pass through unsanitized.
type StatusCatalogResult struct {
	Statuses []propstack.Status `json:"statuses"`
}

// PropertyListPayload represents the MCP resource payload for property
// listings.
type PropertyListPayload struct {
	Properties []OverviewEntry `json:"properties"`
	Total      int             `json:"total"`
}
