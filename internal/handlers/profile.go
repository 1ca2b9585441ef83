package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
	"github.com/warblerhq/warbler/internal/templates"
)

// ProfileEditor defines the interface that the profile service must implement.
type ProfileEditor interface {
	UpdateProfile(ctx context.Context, userID int64, password string, update services.ProfileUpdate) (*models.User, error)
}

// UserRemover defines the interface that the account-deletion service must
// implement.
type UserRemover interface {
	Delete(ctx context.Context, userID int64) error
}

// NewProfileEditPageHandler renders the edit form pre-filled with the
// session user's profile.
func NewProfileEditPageHandler(users UserProvider, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, ok := currentUser(w, r, manager, users)
		if !ok {
			return
		}

		renderPage(w, r, manager, renderer, http.StatusOK, "users_edit", &templates.Data{
			CurrentUser: me,
			User:        me,
		})
	}
}

// NewProfileEditHandler applies the submitted profile after re-checking
// the password. A wrong password bounces home with a notice.
func NewProfileEditHandler(editor ProfileEditor, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		me, ok := sessionUserID(r)
		if !ok {
			unauthorized(w, r, manager)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		update := services.ProfileUpdate{
			Username:       r.PostFormValue("username"),
			Email:          r.PostFormValue("email"),
			ImageURL:       r.PostFormValue("image_url"),
			HeaderImageURL: r.PostFormValue("header_image_url"),
			Bio:            optionalFormValue(r, "bio"),
			Location:       optionalFormValue(r, "location"),
		}

		user, err := editor.UpdateProfile(ctx, me, r.PostFormValue("password"), update)
		if err != nil {
			session := middlewares.GetSessionFromContext(ctx)
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				flashAndRedirect(w, r, manager, "Wrong password, please try again.", "/")
			case errors.Is(err, services.ErrUserDoesNotExist):
				unauthorized(w, r, manager)
			case errors.Is(err, services.ErrUserAlreadyExists):
				if session != nil {
					session.AddFlash("Username already taken")
				}
				renderPage(w, r, manager, renderer, http.StatusOK, "users_edit", &templates.Data{
					User: profileFromUpdate(me, update),
				})
			case errors.Is(err, services.ErrMissingField):
				if session != nil {
					session.AddFlash("Username and e-mail are required.")
				}
				renderPage(w, r, manager, renderer, http.StatusOK, "users_edit", &templates.Data{
					User: profileFromUpdate(me, update),
				})
			default:
				internalError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusFound)
	}
}

// NewUserDeleteHandler removes the account, drops the session and lands
// on the signup page.
func NewUserDeleteHandler(remover UserRemover, manager *sessions.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		me, ok := sessionUserID(r)
		if !ok {
			unauthorized(w, r, manager)
			return
		}

		if err := remover.Delete(ctx, me); err != nil {
			internalError(w, r, err)
			return
		}

		if session := middlewares.GetSessionFromContext(ctx); session != nil {
			if err := manager.Destroy(ctx, w, session); err != nil {
				internalError(w, r, err)
				return
			}
		}

		http.Redirect(w, r, "/signup", http.StatusFound)
	}
}

// optionalFormValue maps an absent or empty form field to nil.
func optionalFormValue(r *http.Request, name string) *string {
	v := r.PostFormValue(name)
	if v == "" {
		return nil
	}
	return &v
}

// profileFromUpdate rebuilds the form state for a failed edit re-render.
func profileFromUpdate(userID int64, update services.ProfileUpdate) *models.User {
	return &models.User{
		ID:             userID,
		Username:       update.Username,
		Email:          update.Email,
		ImageURL:       update.ImageURL,
		HeaderImageURL: update.HeaderImageURL,
		Bio:            update.Bio,
		Location:       update.Location,
	}
}
