package errors

import (
	"errors"
	"strings"
	"testing"
)

// TestCategorizeError validates error classification from message content
func TestCategorizeError(t *testing.T) {
	testCases := []struct {
		input  string
		expect ErrorType
		name   string
	}{
		{"dial tcp: connection refused", ErrorTypeNetwork, "connection refused"},
		{"request timeout exceeded", ErrorTypeTimeout, "timeout"},
		{"context deadline exceeded", ErrorTypeTimeout, "deadline"},
		{"401 unauthorized", ErrorTypeAuth, "unauthorized"},
		{"403 forbidden", ErrorTypeForbidden, "forbidden"},
		{"resource not found", ErrorTypeNotFound, "not found"},
		{"429 rate limit exceeded", ErrorTypeRateLimit, "rate limit"},
		{"500 internal server error", ErrorTypeServer, "server error"},
		{"something odd happened", ErrorTypeUnknown, "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CategorizeError(errors.New(tc.input))
			if got.Type != tc.expect {
				t.Errorf("Expected type %s, got %s", tc.expect, got.Type)
			}
		})
	}
}

// TestCategorizeErrorPassthrough validates that a CLIError keeps its type
func TestCategorizeErrorPassthrough(t *testing.T) {
	original := SessionExpiredError()
	got := CategorizeError(original)
	if got != original {
		t.Error("Expected the original CLIError back")
	}

	if CategorizeError(nil) != nil {
		t.Error("Expected nil for nil input")
	}
}

// TestCLIErrorUnwrap validates the error chain
func TestCLIErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewCLIError(ErrorTypeServer, "wrapped", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
}

// TestFormatError validates the user-facing rendering
func TestFormatError(t *testing.T) {
	msg := FormatError(RateLimitError(30))

	if !strings.Contains(msg, "rate_limit") {
		t.Errorf("Expected error type in output, got %q", msg)
	}
	if !strings.Contains(msg, "Suggestion:") {
		t.Errorf("Expected suggestion in output, got %q", msg)
	}
	if !strings.Contains(msg, "30 seconds") {
		t.Errorf("Expected retry hint in output, got %q", msg)
	}

	if FormatError(nil) != "" {
		t.Error("Expected empty string for nil error")
	}
}
