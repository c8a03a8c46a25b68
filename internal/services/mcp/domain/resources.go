package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/immotools/propstack-mcp/internal/propstack"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	propertiesAllURI    = "propstack://properties/all"
	propertiesActiveURI = "propstack://properties/active"

	propertySinglePrefix    = "propstack://properties/single/"
	propertySingleAllPrefix = "propstack://properties/single_all/"
)

// activeStatusFilter restricts the active listing to the two publicly
// marketable stages: Vermarktung and Reserviert.
var activeStatusFilter = propstack.StatusMarketing + "," + propstack.StatusReserved

// PropertiesAllResource defines the readable listing of every property.
func PropertiesAllResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "properties_all",
		Description: "Overview of all properties in the inventory.",
		MIMEType:    "application/json",
		URI:         propertiesAllURI,
	}
}

// PropertiesAllResourceHandler returns the overview of every property.
func PropertiesAllResourceHandler(api PropertyService) mcp.ResourceHandler {
	return propertyListResourceHandler(api, propertiesAllURI, "")
}

// PropertiesActiveResource defines the readable listing of actively marketed
// properties.
func PropertiesActiveResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "properties_active",
		Description: "Overview of properties currently in marketing or reserved.",
		MIMEType:    "application/json",
		URI:         propertiesActiveURI,
	}
}

// PropertiesActiveResourceHandler returns the overview pre-filtered to the
// active statuses.
func PropertiesActiveResourceHandler(api PropertyService) mcp.ResourceHandler {
	return propertyListResourceHandler(api, propertiesActiveURI, activeStatusFilter)
}

func propertyListResourceHandler(api PropertyService, defaultURI, statusFilter string) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if api == nil {
			return nil, fmt.Errorf("property service is not configured")
		}

		uri := defaultURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		searchResult, err := api.Search(ctx, propstack.SearchParams{Status: statusFilter})
		if err != nil {
			return nil, fmt.Errorf("property list failed: %w", err)
		}

		payload := PropertyListPayload{
			Properties: overviewEntries(searchResult.Units),
			Total:      searchResult.Total,
		}
		return jsonResourceResult(uri, payload)
	}
}

// PropertySingleResourceTemplate defines the media-free single property
// resource.
func PropertySingleResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "property_single",
		Description: "Sanitized detail record of one property, media removed.",
		MIMEType:    "application/json",
		URITemplate: propertySinglePrefix + "{id}",
	}
}

// PropertySingleResourceHandler returns one sanitized record without media.
func PropertySingleResourceHandler(api PropertyService) mcp.ResourceHandler {
	return singlePropertyResourceHandler(api, propertySinglePrefix, true)
}

// PropertySingleAllResourceTemplate defines the single property resource with
// media retained.
func PropertySingleAllResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "property_single_all",
		Description: "Sanitized detail record of one property, media included.",
		MIMEType:    "application/json",
		URITemplate: propertySingleAllPrefix + "{id}",
	}
}

// PropertySingleAllResourceHandler returns one sanitized record with media.
func PropertySingleAllResourceHandler(api PropertyService) mcp.ResourceHandler {
	return singlePropertyResourceHandler(api, propertySingleAllPrefix, false)
}

func singlePropertyResourceHandler(api PropertyService, prefix string, removeMedia bool) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if api == nil {
			return nil, fmt.Errorf("property service is not configured")
		}
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("unit id is required; use URI format %s{id}", prefix)
		}
		uri := req.Params.URI

		unitID, err := parseUnitIDFromURI(uri, prefix)
		if err != nil {
			return nil, err
		}

		unit, err := api.UnitByID(ctx, unitID)
		if err != nil {
			return nil, fmt.Errorf("property lookup failed: %w", err)
		}

		return jsonResourceResult(uri, SanitizeUnit(unit, removeMedia))
	}
}

// parseUnitIDFromURI extracts the unit id from a URI of the form
// <prefix>{id}. It requires a non-empty id with no further path segments.
func parseUnitIDFromURI(uri, prefix string) (string, error) {
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("unexpected resource URI %q; expected prefix %s", uri, prefix)
	}
	id := strings.TrimPrefix(uri, prefix)
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("invalid unit id in resource URI %q", uri)
	}
	return id, nil
}

// jsonResourceResult renders a payload as a pretty-printed JSON resource.
func jsonResourceResult(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource payload: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
