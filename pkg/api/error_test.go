package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumen-hq/lumen-cli/pkg/client"
)

func errorServer(t *testing.T, status int, body string) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client.Init()
	client.GetClient().SetBaseURL(server.URL)
}

// TestParseErrorEnvelope validates decoding of the structured error body
func TestParseErrorEnvelope(t *testing.T) {
	errorServer(t, 404, `{"code":"not_found","message":"post does not exist"}`)

	_, err := GetPost("nonexistent")
	if err == nil {
		t.Fatal("Expected error for 404")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.Code != "not_found" {
		t.Errorf("Expected code not_found, got %s", apiErr.Code)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", apiErr.StatusCode)
	}
	if !IsNotFound(err) {
		t.Error("Expected IsNotFound true")
	}
}

// TestParseErrorFallback validates the generic error for non-envelope
// bodies
func TestParseErrorFallback(t *testing.T) {
	errorServer(t, 500, `internal server error`)

	_, err := GetFeed(1, 10)
	if err == nil {
		t.Fatal("Expected error for 500")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.Code != "unknown_error" {
		t.Errorf("Expected fallback code, got %s", apiErr.Code)
	}
	if !IsServerError(err) {
		t.Error("Expected IsServerError true")
	}
}

// TestStatusPredicates validates the error classification helpers
func TestStatusPredicates(t *testing.T) {
	testCases := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{401, IsUnauthorized, "unauthorized"},
		{403, IsForbidden, "forbidden"},
		{404, IsNotFound, "not found"},
		{500, IsServerError, "server error"},
		{503, IsServerError, "service unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := &APIError{StatusCode: tc.status}
			if !tc.check(err) {
				t.Errorf("Expected predicate true for %d", tc.status)
			}
		})
	}

	// Non-API errors never match
	if IsUnauthorized(nil) || IsNotFound(nil) {
		t.Error("Expected predicates false for nil")
	}
}
