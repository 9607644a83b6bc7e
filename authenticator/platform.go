package authenticator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// PlatformConfig holds managed auth service configuration
type PlatformConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// PlatformBackend implements the Backend interface over the managed
// authentication service's REST API. One instance is built per callback, so
// it can present the tokens that the redirect itself delivered.
type PlatformBackend struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	provider     Provider
	accessToken  string
	refreshToken string
}

// NewPlatformBackend creates a backend client for a single callback. The
// provider is optional; when present it serves the userinfo fallback and
// completes sessions that carry only an ID token.
func NewPlatformBackend(cfg PlatformConfig, provider Provider, signal *CallbackSignal) (*PlatformBackend, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	backend := &PlatformBackend{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		client:   client,
		provider: provider,
	}
	if signal != nil {
		backend.accessToken = signal.AccessToken
		backend.refreshToken = signal.RefreshToken
	}

	return backend, nil
}

// GetSession fetches the current session. Returns (nil, nil) while the
// backend has not yet propagated a session for this sign-in.
func (b *PlatformBackend) GetSession(ctx context.Context) (*Session, error) {
	resp, err := b.do(ctx, http.MethodGet, "/session", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusNotFound:
		return nil, nil
	case http.StatusOK:
		// decoded below
	default:
		return nil, fmt.Errorf("session endpoint returned status %d", resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	// Some responses embed identity only in the ID token
	if session.User == nil && session.IDToken != "" && b.provider != nil {
		claims, err := b.provider.VerifyIDToken(ctx, session.IDToken)
		if err != nil {
			log.Printf("ID token verification on session payload failed: %v", err)
		} else {
			session.User = userFromClaims("", "", claims)
		}
	}

	return &session, nil
}

// GetUser fetches the user record directly, independent of session state.
// Prefers the issuer's userinfo endpoint when the callback carried an access
// token; falls back to the service's own user endpoint otherwise.
func (b *PlatformBackend) GetUser(ctx context.Context) (*User, error) {
	if b.accessToken != "" && b.provider != nil {
		return b.provider.UserInfo(ctx, b.accessToken)
	}

	resp, err := b.do(ctx, http.MethodGet, "/user", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusNotFound:
		return nil, nil
	case http.StatusOK:
		// decoded below
	default:
		return nil, fmt.Errorf("user endpoint returned status %d", resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}

// RefreshSession asks the service to mint a session from the refresh token
func (b *PlatformBackend) RefreshSession(ctx context.Context) error {
	if b.refreshToken == "" {
		return errors.New("no refresh token available")
	}

	body := map[string]string{"refresh_token": b.refreshToken}
	resp, err := b.do(ctx, http.MethodPost, "/token?grant_type=refresh_token", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return fmt.Errorf("failed to decode refreshed session: %w", err)
	}
	if session.AccessToken != "" {
		b.accessToken = session.AccessToken
	}
	if session.RefreshToken != "" {
		b.refreshToken = session.RefreshToken
	}

	return nil
}

// SignOut revokes the current session at the service
func (b *PlatformBackend) SignOut(ctx context.Context) error {
	resp, err := b.do(ctx, http.MethodPost, "/logout", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("logout endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

// do issues a request with the service API key and, when present, the
// callback's bearer token
func (b *PlatformBackend) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if b.apiKey != "" {
		req.Header.Set("apikey", b.apiKey)
	}
	if b.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+b.accessToken)
	}

	return b.client.Do(req)
}
