package authenticator

import (
	"context"
	"errors"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OpenIDProvider implements the Provider interface for any OpenID Connect
// issuer (Auth0, Google, a self-hosted IdP)
type OpenIDProvider struct {
	provider *oidc.Provider
	config   oauth2.Config
}

// OpenIDConfig holds OpenID Connect configuration
type OpenIDConfig struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Scopes       []string
}

// NewOpenIDProvider creates a new OpenID Connect provider with the given configuration
func NewOpenIDProvider(cfg OpenIDConfig) (Provider, error) {
	ctx := context.Background()

	// Validate required configuration
	if cfg.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.CallbackURL == "" {
		return nil, errors.New("callback URL is required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, err
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "profile", "email"}
	}

	conf := oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       scopes,
	}

	return &OpenIDProvider{
		provider: provider,
		config:   conf,
	}, nil
}

// AuthURL returns the authorization URL that starts the sign-in redirect
func (p *OpenIDProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// VerifyIDToken verifies a raw ID token and extracts its claims
func (p *OpenIDProvider) VerifyIDToken(ctx context.Context, rawIDToken string) (Claims, error) {
	if rawIDToken == "" {
		return nil, errors.New("no id_token present")
	}

	oidcConfig := &oidc.Config{
		ClientID: p.config.ClientID,
	}

	idToken, err := p.provider.Verifier(oidcConfig).Verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// UserInfo fetches the user record from the issuer's userinfo endpoint using
// an access token. This is the identity channel independent of the backend's
// session store.
func (p *OpenIDProvider) UserInfo(ctx context.Context, accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, errors.New("no access token present")
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	info, err := p.provider.UserInfo(ctx, source)
	if err != nil {
		return nil, err
	}

	var claims Claims
	if err := info.Claims(&claims); err != nil {
		return nil, err
	}

	return userFromClaims(info.Subject, info.Email, claims), nil
}

// userFromClaims builds a backend user record out of token claims
func userFromClaims(subject, email string, claims Claims) *User {
	user := &User{
		ID:       subject,
		Email:    email,
		Metadata: claims,
	}

	if user.ID == "" {
		if sub, ok := claims["sub"].(string); ok {
			user.ID = sub
		}
	}
	if user.Email == "" {
		if addr, ok := claims["email"].(string); ok {
			user.Email = addr
		}
	}
	if iss, ok := claims["iss"].(string); ok {
		user.Provider = iss
	}

	return user
}
