package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
	"github.com/warblerhq/warbler/internal/templates"
)

// UserProvider defines the profile reads the HTML pages need.
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, search string) ([]models.User, error)
	Followers(ctx context.Context, userID int64) ([]models.User, error)
	Following(ctx context.Context, userID int64) ([]models.User, error)
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
}

// MessageProvider defines the message reads the HTML pages need.
type MessageProvider interface {
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Message, error)
	Timeline(ctx context.Context, userID int64, limit int) ([]models.TimelineMessage, error)
	Latest(ctx context.Context, limit int) ([]models.TimelineMessage, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

// NewUsersIndexHandler lists users, filtered by the q query parameter.
func NewUsersIndexHandler(users UserProvider, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, ok := currentUser(w, r, manager, users)
		if !ok {
			return
		}

		search := r.URL.Query().Get("q")
		list, err := users.List(r.Context(), search)
		if err != nil {
			internalError(w, r, err)
			return
		}

		renderPage(w, r, manager, renderer, http.StatusOK, "users_index", &templates.Data{
			CurrentUser: me,
			Users:       list,
			Search:      search,
		})
	}
}

// NewUserShowHandler renders a user's profile with their messages, newest
// first.
func NewUserShowHandler(
	users UserProvider,
	messages MessageProvider,
	manager *sessions.Manager,
	renderer *templates.Renderer,
) http.HandlerFunc {
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

		list, err := messages.GetByUser(ctx, userID)
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

		isFollowing := false
		if me.ID != user.ID {
			isFollowing, err = users.IsFollowing(ctx, me.ID, user.ID)
			if err != nil {
				internalError(w, r, err)
				return
			}
		}

		renderPage(w, r, manager, renderer, http.StatusOK, "users_show", &templates.Data{
			CurrentUser:    me,
			User:           user,
			Messages:       list,
			MessageCount:   count,
			FollowingCount: len(following),
			FollowersCount: len(followers),
			IsFollowing:    isFollowing,
		})
	}
}
