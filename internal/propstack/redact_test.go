package propstack

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRedactSecrets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"key param", "request failed: key=abc123secret", "request failed: key=***"},
		{"token param", "bad response for token=tok_9f8e", "bad response for token=***"},
		{"bearer value", "auth header bearer sk-live-42 rejected", "auth header bearer *** rejected"},
		{"case insensitive", "Bearer ABCDEF", "Bearer ***"},
		{"key stops at ampersand", "url?key=secret&page=2", "url?key=***&page=2"},
		{"clean message untouched", "connection refused", "connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := redactSecrets(tt.input)
			if got != tt.want {
				t.Errorf("redactSecrets(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScrubErr(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		if scrubErr(nil) != nil {
			t.Fatal("expected nil")
		}
	})

	t.Run("clean error keeps its type", func(t *testing.T) {
		orig := &NotFoundError{UnitID: "W-1"}
		got := scrubErr(orig)
		if got != error(orig) {
			t.Fatalf("expected identical error back, got %v", got)
		}
	})

	t.Run("secret-bearing message is scrubbed", func(t *testing.T) {
		orig := fmt.Errorf("upstream rejected key=supersecret")
		got := scrubErr(orig)
		if strings.Contains(got.Error(), "supersecret") {
			t.Fatalf("secret leaked: %q", got.Error())
		}
		if !strings.Contains(got.Error(), "key=***") {
			t.Fatalf("expected redaction marker, got %q", got.Error())
		}
	})

	t.Run("scrubbed error still unwraps", func(t *testing.T) {
		orig := fmt.Errorf("wrap: %w token=abc", &APIError{StatusCode: 401, Status: "Unauthorized"})
		got := scrubErr(orig)
		var apiErr *APIError
		if !errors.As(got, &apiErr) {
			t.Fatalf("expected APIError through scrubbing, got %v", got)
		}
	})
}
