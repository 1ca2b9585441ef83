package handlers

import (
	"errors"
	"net/http"

	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
	"github.com/warblerhq/warbler/internal/templates"
)

// NewHomeHandler returns the handler for the root page: the timeline of
// the logged-in user's own and followed users' messages, or the anonymous
// landing page.
func NewHomeHandler(
	users UserProvider,
	messages MessageProvider,
	manager *sessions.Manager,
	renderer *templates.Renderer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := sessionUserID(r)
		if !ok {
			renderPage(w, r, manager, renderer, http.StatusOK, "home_anon", nil)
			return
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				// Stale session for a deleted user.
				if session := middlewares.GetSessionFromContext(ctx); session != nil {
					session.ClearUser()
				}
				renderPage(w, r, manager, renderer, http.StatusOK, "home_anon", nil)
				return
			}
			internalError(w, r, err)
			return
		}

		timeline, err := messages.Timeline(ctx, userID, 0)
		if err != nil {
			internalError(w, r, err)
			return
		}

		count, err := messages.CountByUser(ctx, userID)
		if err != nil {
			internalError(w, r, err)
			return
		}

		following, err := users.Following(ctx, userID)
		if err != nil {
			internalError(w, r, err)
			return
		}

		followers, err := users.Followers(ctx, userID)
		if err != nil {
			internalError(w, r, err)
			return
		}

		renderPage(w, r, manager, renderer, http.StatusOK, "home", &templates.Data{
			CurrentUser:    user,
			Timeline:       timeline,
			MessageCount:   count,
			FollowingCount: len(following),
			FollowersCount: len(followers),
		})
	}
}
