package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/monitoring"
	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
	"github.com/warblerhq/warbler/internal/templates"
)

// Authenticator defines the interface that the login service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// NewLoginPageHandler renders the login form.
func NewLoginPageHandler(manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, manager, renderer, http.StatusOK, "login", nil)
	}
}

// NewLoginHandler checks the credentials and opens the session. Unknown
// usernames and wrong passwords get the same notice.
func NewLoginHandler(auth Authenticator, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		session := middlewares.GetSessionFromContext(ctx)

		user, err := auth.Authenticate(ctx, username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist),
				errors.Is(err, services.ErrInvalidCredentials):
				reason := "invalid_credentials"
				if errors.Is(err, services.ErrUserDoesNotExist) {
					reason = "unknown_user"
				}
				monitoring.LoginFailure.WithLabelValues(reason).Inc()

				if session != nil {
					session.AddFlash("Invalid credentials.")
				}
				renderPage(w, r, manager, renderer, http.StatusOK, "login", &templates.Data{
					FormUsername: username,
				})
			default:
				internalError(w, r, err)
			}
			return
		}

		monitoring.LoginSuccess.Inc()

		if session != nil {
			session.SetUser(user.ID)
			session.AddFlash(fmt.Sprintf("Hello, %s!", user.Username))
			if err := manager.Save(ctx, w, session); err != nil {
				internalError(w, r, err)
				return
			}
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// NewLogoutHandler closes the session's login and sends the visitor to
// the login page.
func NewLogoutHandler(manager *sessions.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if session := middlewares.GetSessionFromContext(r.Context()); session != nil {
			session.ClearUser()
			session.AddFlash("You have successfully logged out.")
			if err := manager.Save(r.Context(), w, session); err != nil {
				internalError(w, r, err)
				return
			}
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
