package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/nhonn/secret-key-manager-sub001/userctx"
)

// RequireAuth ensures the user is authenticated
// If not authenticated, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		userID, _ := sess.Get("user_id").(string)

		if userID == "" {
			// Store the intended destination for redirect after login
			sess.Set("redirect_after_login", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		email, _ := sess.Get("user_email").(string)

		// Make the identity available to handlers and repositories
		ctx := userctx.WithUser(r.Context(), userID, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
