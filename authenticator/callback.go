package authenticator

import (
	"net/url"
)

// defaultErrorDescription is used when the provider sends an error code
// without an error_description.
const defaultErrorDescription = "Unknown OAuth error"

// ProviderError is an error the identity provider reported inline on the
// redirect, before any backend call was made.
type ProviderError struct {
	Code        string
	Description string
}

// CallbackSignal is the parsed evidence from a redirect URL. It is immutable
// once parsed and scoped to a single navigation.
type CallbackSignal struct {
	Code          string
	AccessToken   string
	RefreshToken  string
	ProviderError *ProviderError
}

// IsCallback reports whether the navigation is an OAuth return at all.
func (s *CallbackSignal) IsCallback() bool {
	return s.Code != "" || s.AccessToken != "" || s.ProviderError != nil
}

// DetectCallback inspects a redirect URL and extracts OAuth callback
// parameters. Providers deliver tokens in either the query string or the
// fragment, so both are parsed into independent maps. Pure parsing; no
// network calls.
func DetectCallback(u *url.URL) *CallbackSignal {
	query := u.Query()

	// A malformed fragment yields an empty map rather than an error signal.
	fragment, err := url.ParseQuery(u.Fragment)
	if err != nil {
		fragment = url.Values{}
	}

	signal := &CallbackSignal{
		Code:         firstOf(query, fragment, "code"),
		AccessToken:  firstOf(query, fragment, "access_token"),
		RefreshToken: firstOf(query, fragment, "refresh_token"),
	}

	// Query takes precedence over the fragment when both carry an error.
	for _, params := range []url.Values{query, fragment} {
		if !params.Has("error") {
			continue
		}
		description := params.Get("error_description")
		if description == "" {
			description = defaultErrorDescription
		}
		signal.ProviderError = &ProviderError{
			Code:        params.Get("error"),
			Description: description,
		}
		break
	}

	return signal
}

// firstOf returns the query value for key, falling back to the fragment
func firstOf(query, fragment url.Values, key string) string {
	if v := query.Get(key); v != "" {
		return v
	}
	return fragment.Get(key)
}
