package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
	"github.com/warblerhq/warbler/internal/templates"
)

// urlParamID parses a chi URL parameter as an id.
func urlParamID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// urlParamUsername reads the username chi URL parameter.
func urlParamUsername(r *http.Request) string {
	return chi.URLParam(r, "username")
}

// sessionUserID returns the logged-in user's id, if any.
func sessionUserID(r *http.Request) (int64, bool) {
	session := middlewares.GetSessionFromContext(r.Context())
	if session == nil || session.UserID == nil {
		return 0, false
	}
	return *session.UserID, true
}

// renderPage pops the session's queued flashes into the page data, saves
// the session if it changed (Set-Cookie must precede the status line),
// and renders.
func renderPage(w http.ResponseWriter, r *http.Request, manager *sessions.Manager, renderer *templates.Renderer, status int, name string, data *templates.Data) {
	if data == nil {
		data = &templates.Data{}
	}

	if session := middlewares.GetSessionFromContext(r.Context()); session != nil {
		data.Flashes = append(data.Flashes, session.PopFlashes()...)
		if session.Dirty() {
			if err := manager.Save(r.Context(), w, session); err != nil {
				logger.Log.Errorw("failed to save session", "error", err)
			}
		}
	}

	renderer.Render(w, status, name, data)
}

// flashAndRedirect queues a one-shot notice and redirects. The notice
// shows up on whatever page renders next.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, manager *sessions.Manager, flash, location string) {
	if session := middlewares.GetSessionFromContext(r.Context()); session != nil {
		session.AddFlash(flash)
		if err := manager.Save(r.Context(), w, session); err != nil {
			logger.Log.Errorw("failed to save session", "error", err)
		}
	}
	http.Redirect(w, r, location, http.StatusFound)
}

// unauthorized bounces the visitor to the landing page with the shared
// unauthorized notice.
func unauthorized(w http.ResponseWriter, r *http.Request, manager *sessions.Manager) {
	flashAndRedirect(w, r, manager, middlewares.AccessUnauthorizedFlash, "/")
}

// notFound renders the 404 page.
func notFound(w http.ResponseWriter, r *http.Request, manager *sessions.Manager, renderer *templates.Renderer) {
	renderPage(w, r, manager, renderer, http.StatusNotFound, "not_found", nil)
}

// internalError answers an HTML request that failed on something the
// visitor cannot fix.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.GetRequestIDFromContext(r.Context()),
		"err", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

type userGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// currentUser resolves the session user for pages that render it. A
// session pointing at a deleted user is cleared and treated as anonymous.
// On failure the response is already written.
func currentUser(w http.ResponseWriter, r *http.Request, manager *sessions.Manager, users userGetter) (*models.User, bool) {
	session := middlewares.GetSessionFromContext(r.Context())
	if session == nil || session.UserID == nil {
		unauthorized(w, r, manager)
		return nil, false
	}

	user, err := users.GetByID(r.Context(), *session.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserDoesNotExist) {
			session.ClearUser()
			unauthorized(w, r, manager)
			return nil, false
		}
		internalError(w, r, err)
		return nil, false
	}

	return user, true
}

// NewNotFoundHandler renders the 404 page for unmatched routes.
func NewNotFoundHandler(manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notFound(w, r, manager, renderer)
	}
}
