package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/monitoring"
	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
	"github.com/warblerhq/warbler/internal/templates"
)

// SignerUpper defines the interface that the signup service must implement.
type SignerUpper interface {
	Signup(ctx context.Context, username, email, password, imageURL string) (*models.User, error)
}

// NewSignupPageHandler renders the signup form. Always reachable.
func NewSignupPageHandler(manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, manager, renderer, http.StatusOK, "signup", nil)
	}
}

// NewSignupHandler creates the account, logs the visitor in and sends
// them home. Failed submissions re-render the form with a notice instead
// of erroring.
func NewSignupHandler(auth SignerUpper, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		username := r.PostFormValue("username")
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")
		imageURL := r.PostFormValue("image_url")

		session := middlewares.GetSessionFromContext(ctx)

		user, err := auth.Signup(ctx, username, email, password, imageURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				if session != nil {
					session.AddFlash("Username already taken")
				}
			case errors.Is(err, services.ErrMissingField):
				if session != nil {
					session.AddFlash("Username, e-mail and password are required.")
				}
			default:
				internalError(w, r, err)
				return
			}
			renderPage(w, r, manager, renderer, http.StatusOK, "signup", &templates.Data{
				FormUsername: username,
				FormEmail:    email,
			})
			return
		}

		monitoring.RegisterSuccess.Inc()

		if session != nil {
			session.SetUser(user.ID)
			if err := manager.Save(ctx, w, session); err != nil {
				internalError(w, r, err)
				return
			}
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
