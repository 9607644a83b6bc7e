package authenticator

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
)

// Backoff schedule for session retrieval. The initial delay absorbs the
// backend's asynchronous session establishment after the redirect; the linear
// ramp bounds worst-case latency at
// InitialDelay + BaseDelay * (1 + 2 + ... + MaxAttempts-1).
const (
	DefaultInitialDelay = 1 * time.Second
	DefaultBaseDelay    = 1 * time.Second
	DefaultMaxAttempts  = 3
)

// ReconcilerConfig tunes the retry schedule. Zero values fall back to the
// defaults above.
type ReconcilerConfig struct {
	InitialDelay time.Duration
	BaseDelay    time.Duration
	MaxAttempts  int
	Clock        clockwork.Clock
}

// Reconciler drives the callback reconciliation protocol: a bounded retry
// loop against the authentication backend that resolves every callback to
// exactly one terminal outcome, either a canonical user or a classified
// failure. It never retains the resolved user and is safe to reuse across
// callbacks.
type Reconciler struct {
	backend      Backend
	provisioner  Provisioner
	clock        clockwork.Clock
	initialDelay time.Duration
	baseDelay    time.Duration
	maxAttempts  int
}

// NewReconciler creates a reconciler over the given backend. The provisioner
// may be nil, in which case the provisioning step is skipped.
func NewReconciler(backend Backend, provisioner Provisioner, cfg ReconcilerConfig) *Reconciler {
	if cfg.InitialDelay == 0 {
		cfg.InitialDelay = DefaultInitialDelay
	}
	if cfg.BaseDelay == 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}

	return &Reconciler{
		backend:      backend,
		provisioner:  provisioner,
		clock:        cfg.Clock,
		initialDelay: cfg.InitialDelay,
		baseDelay:    cfg.BaseDelay,
		maxAttempts:  cfg.MaxAttempts,
	}
}

// Reconcile resolves a single OAuth callback to a canonical user. On failure
// the returned error is always a *ReconcileError; transport errors from the
// backend never surface directly.
//
// Once started the sequence runs to a terminal outcome; there is no
// cancellation beyond the passed context. Attempts are strictly sequential.
func (r *Reconciler) Reconcile(ctx context.Context, u *url.URL) (*CanonicalUser, error) {
	signal := DetectCallback(u)

	// An upstream rejection cannot be fixed by waiting. Fail before any
	// backend call.
	if signal.ProviderError != nil {
		return nil, newProviderError(signal.ProviderError.Code, signal.ProviderError.Description)
	}
	if !signal.IsCallback() {
		return nil, newMissingParameters()
	}

	// The backend persists the session asynchronously relative to the
	// redirect; checking immediately produces spurious misses.
	r.clock.Sleep(r.initialDelay)

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		session, err := r.backend.GetSession(ctx)
		if err != nil {
			log.Printf("Session fetch attempt %d/%d failed: %v", attempt, r.maxAttempts, err)
			if attempt == r.maxAttempts {
				return nil, newSessionMissing("session retrieval failed: " + err.Error())
			}
			r.clock.Sleep(time.Duration(attempt) * r.baseDelay)
			continue
		}

		// A session without an embedded user cannot yield an identity;
		// treat it the same as no session yet.
		if session != nil && session.User != nil {
			user := canonicalize(session.User)
			r.provision(ctx, user)
			return user, nil
		}

		if attempt < r.maxAttempts {
			r.clock.Sleep(time.Duration(attempt) * r.baseDelay)
		}
	}

	// Some backends expose the user record before session replication
	// completes; try that channel before giving up.
	user, err := r.backend.GetUser(ctx)
	if err != nil {
		log.Printf("User fetch fallback failed: %v", err)
		return nil, newSessionMissing("no session after retries and user fetch failed: " + err.Error())
	}
	if user == nil {
		return nil, newSessionMissing("no session and no user after exhausting both channels")
	}

	// Opportunistic refresh so a session exists for subsequent requests.
	// Not on the critical path.
	if err := r.backend.RefreshSession(ctx); err != nil {
		log.Printf("Session refresh after user fallback failed (ignored): %v", err)
	}

	canonical := canonicalize(user)
	r.provision(ctx, canonical)
	return canonical, nil
}

// provision runs the ensure-defaults step. Provisioning is a convenience, not
// a precondition of authentication: its failure never demotes an
// already-decided success.
func (r *Reconciler) provision(ctx context.Context, user *CanonicalUser) {
	if r.provisioner == nil {
		return
	}
	if err := r.provisioner.EnsureUserSetup(ctx, user); err != nil {
		log.Printf("Provisioning for user %s failed (ignored): %v", user.ID, err)
	}
}

// canonicalize normalizes a backend user record
func canonicalize(u *User) *CanonicalUser {
	return &CanonicalUser{
		ID:       u.ID,
		Email:    u.Email,
		Provider: u.Provider,
		Metadata: u.Metadata,
	}
}
