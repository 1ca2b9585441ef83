package middlewares

import (
	"context"
	"net/http"

	"github.com/warblerhq/warbler/internal/sessions"
)

// sessionContextKey is an unexported type for the session context key
type sessionContextKey struct{}

var sessionKey = sessionContextKey{}

// SessionMiddleware loads the visitor's session (or a fresh anonymous
// one) and stores it in the request context for handlers downstream.
func SessionMiddleware(manager *sessions.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := manager.Load(r.Context(), r)
			next.ServeHTTP(w, r.WithContext(SetSessionToContext(r.Context(), session)))
		})
	}
}

// SetSessionToContext stores a session in the context
func SetSessionToContext(ctx context.Context, session *sessions.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSessionFromContext retrieves the session from the context. Returns nil if not present.
func GetSessionFromContext(ctx context.Context) *sessions.Session {
	session, _ := ctx.Value(sessionKey).(*sessions.Session)
	return session
}
