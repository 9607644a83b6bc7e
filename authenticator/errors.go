package authenticator

import "fmt"

// ErrorKind classifies a terminal reconciliation failure
type ErrorKind string

const (
	// KindProviderError means the identity provider rejected the sign-in.
	// Retrying cannot help; the rejection happened upstream.
	KindProviderError ErrorKind = "provider_error"

	// KindMissingParameters means the navigation carried no callback
	// evidence at all (no code, token or provider error).
	KindMissingParameters ErrorKind = "missing_parameters"

	// KindSessionMissing means the backend never produced an identity
	// within the attempt budget, on either retrieval channel.
	KindSessionMissing ErrorKind = "session_missing"
)

// ReconcileError is the only error type reconciliation surfaces to callers.
// Raw backend errors are folded into Detail and never exposed directly.
type ReconcileError struct {
	Kind   ErrorKind
	Code   string
	Detail string
}

func (e *ReconcileError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func newProviderError(code, description string) *ReconcileError {
	return &ReconcileError{Kind: KindProviderError, Code: code, Detail: description}
}

func newMissingParameters() *ReconcileError {
	return &ReconcileError{Kind: KindMissingParameters, Detail: "no OAuth callback parameters present"}
}

func newSessionMissing(detail string) *ReconcileError {
	return &ReconcileError{Kind: KindSessionMissing, Detail: detail}
}
