package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/config"
	"github.com/lumen-hq/lumen-cli/pkg/credentials"
)

// TestIsSessionError validates session error classification
func TestIsSessionError(t *testing.T) {
	testCases := []struct {
		err    error
		expect bool
		name   string
	}{
		{&api.APIError{StatusCode: 401}, true, "unauthorized API error"},
		{&api.APIError{StatusCode: 404}, false, "not found API error"},
		{errors.New("session expired"), true, "session expired message"},
		{errors.New("token expired"), true, "token expired message"},
		{errors.New("connection refused"), false, "network error"},
		{nil, false, "nil error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSessionError(tc.err); got != tc.expect {
				t.Errorf("Expected IsSessionError=%v, got %v", tc.expect, got)
			}
		})
	}
}

// TestRecoverSessionWithoutToken validates the no-refresh-token error path
func TestRecoverSessionWithoutToken(t *testing.T) {
	tempDir := t.TempDir()
	if err := config.Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	sr := NewSessionRecovery()
	if err := sr.RecoverSession(); err == nil {
		t.Error("Expected error without stored credentials")
	}
}

// TestRecoverSessionRefreshes validates the refresh round trip and the
// persisted update
func TestRecoverSessionRefreshes(t *testing.T) {
	tempDir := t.TempDir()
	if err := config.Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.RefreshResponse{AccessToken: "fresh-access", ExpiresIn: 3600})
	}))
	defer server.Close()

	client.Init()
	client.GetClient().SetBaseURL(server.URL)

	if err := credentials.Save(&credentials.Credentials{
		AccessToken:  "stale-access",
		RefreshToken: "refresh-tok",
		ExpiresAt:    time.Now().Add(-time.Hour),
		UserID:       "u1",
	}); err != nil {
		t.Fatalf("Failed to save credentials: %v", err)
	}

	sr := NewSessionRecovery()
	if err := sr.RecoverSession(); err != nil {
		t.Fatalf("RecoverSession failed: %v", err)
	}

	creds, err := credentials.Load()
	if err != nil {
		t.Fatalf("Failed to load credentials: %v", err)
	}
	if creds.AccessToken != "fresh-access" {
		t.Errorf("Expected refreshed token persisted, got %q", creds.AccessToken)
	}
	if creds.IsExpired() {
		t.Error("Expected new expiry in the future")
	}
}
