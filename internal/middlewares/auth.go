package middlewares

import (
	"net/http"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/sessions"
)

// AccessUnauthorizedFlash is shown after bouncing an anonymous visitor
// off a page that needs a logged-in user.
const AccessUnauthorizedFlash = "Access unauthorized."

// RequireUser guards the HTML routes. Anonymous visitors get flashed
// and redirected to the landing page instead of an error status.
func RequireUser(manager *sessions.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSessionFromContext(r.Context())
			if session == nil {
				logger.Log.Warnw("no session in context", "uri", r.RequestURI)
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			if session.UserID == nil {
				session.AddFlash(AccessUnauthorizedFlash)
				if err := manager.Save(r.Context(), w, session); err != nil {
					logger.Log.Errorw("failed to save session", "error", err)
				}
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAPIUser guards the JSON routes. Anonymous requests get a bare
// 401 instead of the browser redirect dance.
func RequireAPIUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSessionFromContext(r.Context())
			if session == nil || session.UserID == nil {
				logger.Log.Errorw("authorization failed", "uri", r.RequestURI)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
