package propstack

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey reports a client constructed without an API key.
var ErrMissingAPIKey = errors.New("propstack: api key is required (set PROPSTACK_API_KEY)")

// ErrInsecureBaseURL reports a base URL that does not use HTTPS. The API key
// travels in a header, so plaintext transport is never acceptable.
var ErrInsecureBaseURL = errors.New("propstack: base url must use https")

// APIError reports a non-2xx upstream response.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("propstack: upstream request failed: %d %s", e.StatusCode, e.Status)
}

// NotFoundError reports a unit lookup that matched nothing.
type NotFoundError struct {
	UnitID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("propstack: no property found for unit_id %q", e.UnitID)
}

// UnexpectedFormatError reports a response body that is neither the
// {data, meta} envelope nor a bare array.
type UnexpectedFormatError struct {
	Detail string
}

func (e *UnexpectedFormatError) Error() string {
	return fmt.Sprintf("propstack: unexpected response format: %s", e.Detail)
}
