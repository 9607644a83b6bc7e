package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/nhonn/secret-key-manager-sub001/authenticator"
	"github.com/nhonn/secret-key-manager-sub001/services"
)

// Seconds before a failed sign-in page returns the user to the home screen
const failureRedirectSeconds = 5

// authErrorMessages maps reconciliation failure kinds to user-facing text
var authErrorMessages = map[authenticator.ErrorKind]string{
	authenticator.KindProviderError:     "The identity provider rejected the sign-in.",
	authenticator.KindMissingParameters: "The sign-in link is missing its OAuth parameters. Please start again from the login page.",
	authenticator.KindSessionMissing:    "We could not confirm your sign-in with the authentication service. Please try again.",
}

// AuthController handles sign-in, the OAuth callback and sign-out
type AuthController struct {
	provider    authenticator.Provider
	platformCfg authenticator.PlatformConfig
	provisioner services.ProvisioningService
}

// NewAuthController creates a new auth controller
func NewAuthController(provider authenticator.Provider, platformCfg authenticator.PlatformConfig, provisioner services.ProvisioningService) *AuthController {
	return &AuthController{
		provider:    provider,
		platformCfg: platformCfg,
		provisioner: provisioner,
	}
}

// Login initiates the authentication process
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Generate random state
	state, err := generateRandomState()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	sess.Set("state", state)

	// Redirect to the identity provider's sign-in page
	http.Redirect(w, r, ac.provider.AuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the redirect back from the identity provider. It verifies
// the CSRF state, then hands the URL to the session reconciler, which owns
// all retry and fallback policy. This handler only maps the single terminal
// outcome to navigation or an error page.
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	signal := authenticator.DetectCallback(r.URL)

	// Provider-reported errors carry no state; skip the CSRF check and let
	// the reconciler classify them.
	if signal.ProviderError == nil && signal.IsCallback() {
		storedState, _ := sess.Get("state").(string)
		if storedState == "" {
			http.Error(w, "State not found in session", http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("state") != storedState {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}
	}

	backend, err := authenticator.NewPlatformBackend(ac.platformCfg, ac.provider, signal)
	if err != nil {
		http.Error(w, "Failed to reach authentication service: "+err.Error(), http.StatusInternalServerError)
		return
	}

	reconciler := authenticator.NewReconciler(backend, ac.provisioner, authenticator.ReconcilerConfig{})
	user, err := reconciler.Reconcile(r.Context(), r.URL)
	if err != nil {
		ac.renderFailure(w, err)
		return
	}

	// Store the resolved identity in the cookie session
	sess.Set("user_id", user.ID)
	sess.Set("user_email", user.Email)
	sess.Delete("state")

	// Honor the destination stored before the login redirect
	target := "/"
	if stored, ok := sess.Get("redirect_after_login").(string); ok && stored != "" {
		target = stored
		sess.Delete("redirect_after_login")
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Logout clears the local session and revokes the backend session best-effort
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete("user_id")
	sess.Delete("user_email")

	if backend, err := authenticator.NewPlatformBackend(ac.platformCfg, ac.provider, nil); err == nil {
		if err := backend.SignOut(r.Context()); err != nil {
			log.Printf("Backend sign-out failed (ignored): %v", err)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderFailure shows the classified failure with an automatic redirect home,
// so the user never lands on a dead-end error screen
func (ac *AuthController) renderFailure(w http.ResponseWriter, err error) {
	var recErr *authenticator.ReconcileError
	if !errors.As(err, &recErr) {
		http.Error(w, "Sign-in failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	message := authErrorMessages[recErr.Kind]
	if message == "" {
		message = "An unexpected error occurred during sign-in. Please try again."
	}
	if recErr.Code != "" {
		message += " (" + recErr.Code + ")"
	}

	status := http.StatusUnauthorized
	if recErr.Kind == authenticator.KindMissingParameters {
		status = http.StatusBadRequest
	}

	log.Printf("Sign-in failed: %v", recErr)

	templateData := struct {
		Title           string
		CurrentPage     string
		Message         string
		RedirectSeconds int
	}{
		Title:           "Sign-in failed",
		CurrentPage:     "",
		Message:         message,
		RedirectSeconds: failureRedirectSeconds,
	}

	renderTemplateWithStatus(w, status, "auth_error", "templates/auth_error.html", templateData)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
