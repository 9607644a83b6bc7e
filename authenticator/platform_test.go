package authenticator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// Test session retrieval while the backend has not propagated a session yet
func TestPlatformBackendGetSessionNotReady(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/session" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	backend, err := NewPlatformBackend(PlatformConfig{BaseURL: server.URL}, nil, nil)
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	session, err := backend.GetSession(context.Background())
	if err != nil {
		t.Fatalf("Expected no error for 204, got: %v", err)
	}
	if session != nil {
		t.Errorf("Expected nil session for 204, got: %+v", session)
	}
}

// Test session retrieval with an established session
func TestPlatformBackendGetSessionEstablished(t *testing.T) {
	var gotAPIKey, gotAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuthorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok123","user":{"id":"u1","email":"a@b.com"}}`))
	}))
	defer server.Close()

	signal := &CallbackSignal{AccessToken: "fragment-token"}
	backend, err := NewPlatformBackend(PlatformConfig{BaseURL: server.URL, APIKey: "service-key"}, nil, signal)
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	session, err := backend.GetSession(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if session == nil || session.User == nil {
		t.Fatalf("Expected session with user, got: %+v", session)
	}
	if session.User.ID != "u1" || session.User.Email != "a@b.com" {
		t.Errorf("Unexpected user: %+v", session.User)
	}
	if gotAPIKey != "service-key" {
		t.Errorf("Expected apikey header, got: %q", gotAPIKey)
	}
	if gotAuthorization != "Bearer fragment-token" {
		t.Errorf("Expected bearer token from the callback, got: %q", gotAuthorization)
	}
}

// Test user retrieval when the record does not exist yet
func TestPlatformBackendGetUserNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	backend, err := NewPlatformBackend(PlatformConfig{BaseURL: server.URL}, nil, nil)
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	user, err := backend.GetUser(context.Background())
	if err != nil {
		t.Fatalf("Expected no error for 404, got: %v", err)
	}
	if user != nil {
		t.Errorf("Expected nil user, got: %+v", user)
	}
}

// Test that refreshing without a refresh token fails locally
func TestPlatformBackendRefreshWithoutToken(t *testing.T) {
	backend, err := NewPlatformBackend(PlatformConfig{BaseURL: "http://localhost:9"}, nil, nil)
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	if err := backend.RefreshSession(context.Background()); err == nil {
		t.Error("Expected error when no refresh token is available")
	}
}

// Test that a refresh rotates the tokens used on subsequent requests
func TestPlatformBackendRefreshRotatesTokens(t *testing.T) {
	var logoutAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			if r.URL.Query().Get("grant_type") != "refresh_token" {
				t.Errorf("Unexpected grant_type: %s", r.URL.Query().Get("grant_type"))
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"rotated-token","refresh_token":"rotated-refresh"}`))
		case "/logout":
			logoutAuthorization = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	signal := &CallbackSignal{RefreshToken: "original-refresh"}
	backend, err := NewPlatformBackend(PlatformConfig{BaseURL: server.URL}, nil, signal)
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	if err := backend.RefreshSession(context.Background()); err != nil {
		t.Fatalf("Expected refresh to succeed, got: %v", err)
	}
	if err := backend.SignOut(context.Background()); err != nil {
		t.Fatalf("Expected sign out to succeed, got: %v", err)
	}
	if logoutAuthorization != "Bearer rotated-token" {
		t.Errorf("Expected rotated token on logout, got: %q", logoutAuthorization)
	}
}

// Test the full reconciliation path against a backend that needs one retry
func TestReconcileAgainstPlatformBackend(t *testing.T) {
	sessionCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/session" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
			return
		}
		sessionCalls++
		if sessionCalls == 1 {
			// Session not replicated yet on the first check
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok123","user":{"id":"u1","email":"a@b.com"}}`))
	}))
	defer server.Close()

	u, _ := url.Parse("https://app.example.com/callback?code=abc123")
	backend, err := NewPlatformBackend(PlatformConfig{BaseURL: server.URL}, nil, DetectCallback(u))
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	reconciler := NewReconciler(backend, nil, ReconcilerConfig{
		InitialDelay: time.Millisecond,
		BaseDelay:    time.Millisecond,
	})

	user, err := reconciler.Reconcile(context.Background(), u)
	if err != nil {
		t.Fatalf("Expected reconciliation to succeed, got: %v", err)
	}
	if user.ID != "u1" || user.Email != "a@b.com" {
		t.Errorf("Unexpected user: %+v", user)
	}
	if sessionCalls != 2 {
		t.Errorf("Expected 2 session checks, got: %d", sessionCalls)
	}
}

// Test that a provider rejection never reaches the backend
func TestReconcileProviderErrorSkipsBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("Backend should not be called, got request for %s", r.URL.Path)
	}))
	defer server.Close()

	u, _ := url.Parse("https://app.example.com/callback#error=access_denied&error_description=User+cancelled")
	backend, err := NewPlatformBackend(PlatformConfig{BaseURL: server.URL}, nil, DetectCallback(u))
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	reconciler := NewReconciler(backend, nil, ReconcilerConfig{
		InitialDelay: time.Millisecond,
		BaseDelay:    time.Millisecond,
	})

	user, err := reconciler.Reconcile(context.Background(), u)
	if user != nil {
		t.Errorf("Expected no user, got: %+v", user)
	}
	if err == nil {
		t.Fatal("Expected a provider error")
	}
	if got := err.Error(); !strings.Contains(got, "access_denied") {
		t.Errorf("Expected error mentioning access_denied, got: %q", got)
	}
}
