package propstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// BaseURL is the production Propstack API endpoint.
const BaseURL = "https://api.propstack.de/v1"

const (
	apiKeyHeader = "X-API-KEY"
	// defaultPer is the page size used when the caller does not set one.
	defaultPer = 500
)

// Client calls the Propstack units API. It holds no state beyond the API key
// and is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option adjusts client construction.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. The override is subject to the same
// HTTPS requirement as the default.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New creates a client for the Propstack API. It fails when the API key is
// blank or when the base URL is not HTTPS.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	c := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    BaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tracer:     otel.Tracer("github.com/immotools/propstack-mcp/internal/propstack"),
	}
	for _, opt := range opts {
		opt(c)
	}
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("propstack: parse base url: %w", err)
	}
	if parsed.Scheme != "https" {
		return nil, ErrInsecureBaseURL
	}
	return c, nil
}

// Search queries units with the given filters. Searches run without expand,
// trading field completeness for roughly 75% smaller responses; UnitByID is
// the expanded path.
func (c *Client) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	query := url.Values{}
	per := params.Per
	if per <= 0 {
		per = defaultPer
	}
	query.Set("per", strconv.Itoa(per))
	query.Set("with_meta", "1")
	if params.PriceFrom != nil {
		query.Set("price_from", strconv.Itoa(*params.PriceFrom))
	}
	if params.PriceTo != nil {
		query.Set("price_to", strconv.Itoa(*params.PriceTo))
	}
	if params.PlotAreaFrom != nil {
		query.Set("plot_area_from", strconv.Itoa(*params.PlotAreaFrom))
	}
	if params.PropertyType != "" {
		query.Set("property_type", sanitizeFreeText(params.PropertyType))
	}
	if params.Status != "" {
		query.Set("status", NormalizeStatusParam(params.Status))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}

	result, err := c.searchUnits(ctx, query)
	if err != nil {
		return SearchResult{}, scrubErr(err)
	}
	return result, nil
}

// UnitByID returns the fully expanded record for one unit. The upstream API
// exposes no direct per-id fetch at this permission level, so the lookup is a
// search constrained by unit_id.
func (c *Client) UnitByID(ctx context.Context, unitID string) (Unit, error) {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return nil, scrubErr(&NotFoundError{UnitID: unitID})
	}
	query := url.Values{}
	query.Set("unit_id", unitID)
	query.Set("expand", "1")
	query.Set("with_meta", "1")

	result, err := c.searchUnits(ctx, query)
	if err != nil {
		return nil, scrubErr(err)
	}
	if len(result.Units) == 0 {
		return nil, scrubErr(&NotFoundError{UnitID: unitID})
	}
	return result.Units[0], nil
}

// ListStatuses returns the property status catalog. A response without a data
// field yields an empty catalog, not an error.
func (c *Client) ListStatuses(ctx context.Context) ([]Status, error) {
	body, err := c.get(ctx, "/property_statuses", nil)
	if err != nil {
		return nil, scrubErr(err)
	}

	statuses, err := decodeStatuses(body)
	if err != nil {
		return nil, scrubErr(err)
	}
	return statuses, nil
}

func (c *Client) searchUnits(ctx context.Context, query url.Values) (SearchResult, error) {
	body, err := c.get(ctx, "/units", query)
	if err != nil {
		return SearchResult{}, err
	}
	return decodeUnits(body)
}

// get performs an authenticated GET and returns the raw body for 2xx
// responses. No retries: a failed call surfaces immediately.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "propstack.get",
		trace.WithAttributes(attribute.String("propstack.path", path)))
	defer span.End()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("propstack: build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(otelcodes.Error, "request failed")
		return nil, fmt.Errorf("propstack: request failed: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetStatus(otelcodes.Error, resp.Status)
		return nil, &APIError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("propstack: read response: %w", err)
	}
	return body, nil
}

// unitEnvelope is the {data, meta} response shape.
type unitEnvelope struct {
	Data []Unit `json:"data"`
	Meta *struct {
		TotalCount int `json:"total_count"`
	} `json:"meta"`
}

// decodeUnits accepts either the {data, meta} envelope or a bare array and
// resolves both into one canonical shape so nothing downstream re-checks it.
func decodeUnits(body []byte) (SearchResult, error) {
	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		var units []Unit
		if err := json.Unmarshal(trimmed, &units); err != nil {
			return SearchResult{}, &UnexpectedFormatError{Detail: "invalid unit array"}
		}
		return SearchResult{Units: units, Total: len(units)}, nil
	case len(trimmed) > 0 && trimmed[0] == '{':
		var envelope unitEnvelope
		if err := json.Unmarshal(trimmed, &envelope); err != nil || envelope.Data == nil {
			return SearchResult{}, &UnexpectedFormatError{Detail: "object without data array"}
		}
		total := len(envelope.Data)
		if envelope.Meta != nil {
			total = envelope.Meta.TotalCount
		}
		return SearchResult{Units: envelope.Data, Total: total}, nil
	default:
		return SearchResult{}, &UnexpectedFormatError{Detail: "neither envelope nor array"}
	}
}

func decodeStatuses(body []byte) ([]Status, error) {
	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		var statuses []Status
		if err := json.Unmarshal(trimmed, &statuses); err != nil {
			return nil, &UnexpectedFormatError{Detail: "invalid status array"}
		}
		return statuses, nil
	case len(trimmed) > 0 && trimmed[0] == '{':
		var envelope struct {
			Data []Status `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, &UnexpectedFormatError{Detail: "invalid status envelope"}
		}
		if envelope.Data == nil {
			return []Status{}, nil
		}
		return envelope.Data, nil
	default:
		return nil, &UnexpectedFormatError{Detail: "neither envelope nor array"}
	}
}
