package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumen-hq/lumen-cli/pkg/client"
)

// TestLoginParsesSession validates login response decoding
func TestLoginParsesSession(t *testing.T) {
	var gotBody LoginRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/login" {
			http.NotFound(w, r)
			return
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(LoginResponse{
			AccessToken:  "access-tok",
			RefreshToken: "refresh-tok",
			ExpiresIn:    3600,
			User:         User{ID: "u1", Username: "alice", Email: "alice@example.com"},
		})
	}))
	defer server.Close()

	client.Init()
	client.GetClient().SetBaseURL(server.URL)

	resp, err := Login("alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if gotBody.Email != "alice@example.com" {
		t.Errorf("Expected request email sent, got %q", gotBody.Email)
	}
	if resp.AccessToken != "access-tok" {
		t.Errorf("Expected access token, got %q", resp.AccessToken)
	}
	if resp.User.Username != "alice" {
		t.Errorf("Expected user alice, got %q", resp.User.Username)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("Expected expires_in 3600, got %d", resp.ExpiresIn)
	}
}

// TestLoginRejected validates the error path for bad credentials
func TestLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Code: "invalid_credentials", Message: "wrong password"})
	}))
	defer server.Close()

	client.Init()
	client.GetClient().SetBaseURL(server.URL)

	_, err := Login("alice@example.com", "wrong")
	if err == nil {
		t.Fatal("Expected login error")
	}
	if !IsUnauthorized(err) {
		t.Errorf("Expected unauthorized error, got %v", err)
	}
}

// TestRefresh validates token refresh decoding
func TestRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.RefreshToken != "refresh-tok" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Code: "invalid_token", Message: "bad refresh token"})
			return
		}
		json.NewEncoder(w).Encode(RefreshResponse{AccessToken: "new-access", ExpiresIn: 3600})
	}))
	defer server.Close()

	client.Init()
	client.GetClient().SetBaseURL(server.URL)

	resp, err := Refresh("refresh-tok")
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if resp.AccessToken != "new-access" {
		t.Errorf("Expected new access token, got %q", resp.AccessToken)
	}

	if _, err := Refresh("stale"); err == nil {
		t.Error("Expected error for a stale refresh token")
	}
}

// TestGetCurrentUser validates the profile envelope decoding
func TestGetCurrentUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ProfileResponse{
			User: User{ID: "u1", Username: "alice", IsAdmin: true},
		})
	}))
	defer server.Close()

	client.Init()
	client.GetClient().SetBaseURL(server.URL)

	user, err := GetCurrentUser()
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if user.Username != "alice" || !user.IsAdmin {
		t.Errorf("Expected admin alice, got %+v", user)
	}
}
