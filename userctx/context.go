package userctx

import "context"

// Context key type
type contextKey string

const userIDKey contextKey = "user_id"
const userEmailKey contextKey = "user_email"

// WithUser adds the signed-in user's id and email to the context
func WithUser(ctx context.Context, id, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id)
	return context.WithValue(ctx, userEmailKey, email)
}

// GetUserID retrieves the user ID from request context
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

// GetUserEmail retrieves the user email from request context
func GetUserEmail(ctx context.Context) string {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok {
		return "anonymous"
	}
	return email
}
