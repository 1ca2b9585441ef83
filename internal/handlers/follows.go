package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
	"github.com/warblerhq/warbler/internal/templates"
)

// FollowActor defines the follow-graph mutations.
type FollowActor interface {
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
}

// NewFollowingHandler lists the users the subject follows.
func NewFollowingHandler(users UserProvider, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		me, ok := currentUser(w, r, manager, users)
		if !ok {
			return
		}

		userID, err := urlParamID(r, "userID")
		if err != nil {
			notFound(w, r, manager, renderer)
			return
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				notFound(w, r, manager, renderer)
				return
			}
			internalError(w, r, err)
			return
		}

		following, err := users.Following(ctx, userID)
		if err != nil {
			internalError(w, r, err)
			return
		}

		renderPage(w, r, manager, renderer, http.StatusOK, "users_following", &templates.Data{
			CurrentUser: me,
			User:        user,
			Users:       following,
		})
	}
}

// NewFollowersHandler lists the subject's followers.
func NewFollowersHandler(users UserProvider, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		me, ok := currentUser(w, r, manager, users)
		if !ok {
			return
		}

		userID, err := urlParamID(r, "userID")
		if err != nil {
			notFound(w, r, manager, renderer)
			return
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				notFound(w, r, manager, renderer)
				return
			}
			internalError(w, r, err)
			return
		}

		followers, err := users.Followers(ctx, userID)
		if err != nil {
			internalError(w, r, err)
			return
		}

		renderPage(w, r, manager, renderer, http.StatusOK, "users_followers", &templates.Data{
			CurrentUser: me,
			User:        user,
			Users:       followers,
		})
	}
}

// NewFollowHandler makes the session user follow the target, then returns
// to their following list.
func NewFollowHandler(actor FollowActor, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, ok := sessionUserID(r)
		if !ok {
			unauthorized(w, r, manager)
			return
		}

		targetID, err := urlParamID(r, "userID")
		if err != nil {
			notFound(w, r, manager, renderer)
			return
		}

		if err := actor.Follow(r.Context(), me, targetID); err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				notFound(w, r, manager, renderer)
				return
			}
			internalError(w, r, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/users/%d/following", me), http.StatusFound)
	}
}

// NewStopFollowingHandler removes the session user's edge to the target.
func NewStopFollowingHandler(actor FollowActor, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, ok := sessionUserID(r)
		if !ok {
			unauthorized(w, r, manager)
			return
		}

		targetID, err := urlParamID(r, "userID")
		if err != nil {
			notFound(w, r, manager, renderer)
			return
		}

		if err := actor.Unfollow(r.Context(), me, targetID); err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				notFound(w, r, manager, renderer)
				return
			}
			internalError(w, r, err)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/users/%d/following", me), http.StatusFound)
	}
}
