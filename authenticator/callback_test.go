package authenticator

import (
	"net/url"
	"testing"
)

// Test callback detection on a plain navigation with no OAuth parameters
func TestDetectCallbackPlainNavigation(t *testing.T) {
	u, _ := url.Parse("https://app.example.com/callback")
	signal := DetectCallback(u)

	if signal.IsCallback() {
		t.Error("Expected plain navigation to not be a callback")
	}
	if signal.Code != "" || signal.AccessToken != "" || signal.ProviderError != nil {
		t.Errorf("Expected empty signal, got: %+v", signal)
	}
}

// Test detection of the authorization code flow (code in the query string)
func TestDetectCallbackCodeInQuery(t *testing.T) {
	u, _ := url.Parse("https://app.example.com/callback?code=abc123&state=xyz")
	signal := DetectCallback(u)

	if !signal.IsCallback() {
		t.Error("Expected code navigation to be a callback")
	}
	if signal.Code != "abc123" {
		t.Errorf("Expected code abc123, got: %s", signal.Code)
	}
	if signal.ProviderError != nil {
		t.Errorf("Expected no provider error, got: %+v", signal.ProviderError)
	}
}

// Test detection of the implicit flow (tokens in the fragment)
func TestDetectCallbackTokensInFragment(t *testing.T) {
	u, _ := url.Parse("https://app.example.com/callback#access_token=tok123&refresh_token=ref456&token_type=bearer")
	signal := DetectCallback(u)

	if !signal.IsCallback() {
		t.Error("Expected fragment token navigation to be a callback")
	}
	if signal.AccessToken != "tok123" {
		t.Errorf("Expected access token tok123, got: %s", signal.AccessToken)
	}
	if signal.RefreshToken != "ref456" {
		t.Errorf("Expected refresh token ref456, got: %s", signal.RefreshToken)
	}
}

// Test provider error detection and the default description
func TestDetectCallbackProviderError(t *testing.T) {
	tests := []struct {
		name            string
		rawURL          string
		wantCode        string
		wantDescription string
	}{
		{
			name:            "error with description in fragment",
			rawURL:          "https://app.example.com/callback#error=access_denied&error_description=User+cancelled",
			wantCode:        "access_denied",
			wantDescription: "User cancelled",
		},
		{
			name:            "error without description gets default",
			rawURL:          "https://app.example.com/callback?error=server_error",
			wantCode:        "server_error",
			wantDescription: "Unknown OAuth error",
		},
		{
			name:            "query error wins over fragment error",
			rawURL:          "https://app.example.com/callback?error=server_error&error_description=query+side#error=access_denied&error_description=fragment+side",
			wantCode:        "server_error",
			wantDescription: "query side",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.rawURL)
			if err != nil {
				t.Fatalf("Failed to parse URL: %v", err)
			}

			signal := DetectCallback(u)
			if !signal.IsCallback() {
				t.Fatal("Expected error navigation to be a callback")
			}
			if signal.ProviderError == nil {
				t.Fatal("Expected a provider error")
			}
			if signal.ProviderError.Code != tt.wantCode {
				t.Errorf("Expected error code %s, got: %s", tt.wantCode, signal.ProviderError.Code)
			}
			if signal.ProviderError.Description != tt.wantDescription {
				t.Errorf("Expected description %q, got: %q", tt.wantDescription, signal.ProviderError.Description)
			}
		})
	}
}

// Test that query parameters win over fragment parameters for tokens too
func TestDetectCallbackQueryPrecedence(t *testing.T) {
	u, _ := url.Parse("https://app.example.com/callback?code=fromquery#code=fromfragment")
	signal := DetectCallback(u)

	if signal.Code != "fromquery" {
		t.Errorf("Expected query code to win, got: %s", signal.Code)
	}
}

// Test that a malformed fragment does not hide query parameters
func TestDetectCallbackMalformedFragment(t *testing.T) {
	u, _ := url.Parse("https://app.example.com/callback?code=abc123")
	u.Fragment = "not;a%zzquery"

	signal := DetectCallback(u)
	if signal.Code != "abc123" {
		t.Errorf("Expected code abc123 despite malformed fragment, got: %s", signal.Code)
	}
	if signal.ProviderError != nil {
		t.Errorf("Expected no provider error, got: %+v", signal.ProviderError)
	}
}
