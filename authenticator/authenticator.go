package authenticator

import (
	"context"
)

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts identity provider operations
type Provider interface {
	AuthURL(state string) string
	VerifyIDToken(ctx context.Context, rawIDToken string) (Claims, error)
	UserInfo(ctx context.Context, accessToken string) (*User, error)
}

// User is the raw user record as the backend reports it
type User struct {
	ID       string                 `json:"id"`
	Email    string                 `json:"email"`
	Provider string                 `json:"provider,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Session is backend-issued proof of authentication. The embedded user may be
// absent while the backend is still propagating the session.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
	User         *User  `json:"user,omitempty"`
}

// CanonicalUser is the normalized identity handed to the rest of the
// application, independent of which retrieval path produced it.
type CanonicalUser struct {
	ID       string
	Email    string
	Provider string
	Metadata map[string]interface{}
}

// Backend abstracts the managed authentication service consumed during
// callback reconciliation. GetSession and GetUser are independent channels:
// the user record can become readable before the session finishes replicating.
type Backend interface {
	GetSession(ctx context.Context) (*Session, error)
	GetUser(ctx context.Context) (*User, error)
	RefreshSession(ctx context.Context) error
	SignOut(ctx context.Context) error
}

// Provisioner creates default per-user resources after a successful sign-in.
// Its error is diagnostic only; callers must not fail on it.
type Provisioner interface {
	EnsureUserSetup(ctx context.Context, user *CanonicalUser) error
}
