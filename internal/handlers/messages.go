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

// MessagePoster defines the interface that the posting service must implement.
type MessagePoster interface {
	Post(ctx context.Context, userID int64, text string) (*models.Message, error)
}

// MessageRemover defines the interface that the deleting service must implement.
type MessageRemover interface {
	Delete(ctx context.Context, userID, messageID int64) error
}

// NewMessageNewPageHandler renders the new-message form.
func NewMessageNewPageHandler(users UserProvider, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, ok := currentUser(w, r, manager, users)
		if !ok {
			return
		}

		renderPage(w, r, manager, renderer, http.StatusOK, "messages_new", &templates.Data{
			CurrentUser: me,
		})
	}
}

// NewMessageCreateHandler stores the posted message under the session
// user and returns to their profile.
func NewMessageCreateHandler(poster MessagePoster, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
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

		text := r.PostFormValue("text")

		if _, err := poster.Post(ctx, me, text); err != nil {
			session := middlewares.GetSessionFromContext(ctx)
			switch {
			case errors.Is(err, services.ErrEmptyMessage):
				if session != nil {
					session.AddFlash("Message text is required.")
				}
				renderPage(w, r, manager, renderer, http.StatusOK, "messages_new", nil)
			case errors.Is(err, services.ErrMessageTooLong):
				if session != nil {
					session.AddFlash(fmt.Sprintf("Messages are limited to %d characters.", models.MaxMessageLength))
				}
				renderPage(w, r, manager, renderer, http.StatusOK, "messages_new", nil)
			default:
				internalError(w, r, err)
			}
			return
		}

		monitoring.MessagesPosted.Inc()

		http.Redirect(w, r, fmt.Sprintf("/users/%d", me), http.StatusFound)
	}
}

// NewMessageShowHandler renders a single message with its author.
func NewMessageShowHandler(
	messages MessageProvider,
	users UserProvider,
	manager *sessions.Manager,
	renderer *templates.Renderer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		me, ok := currentUser(w, r, manager, users)
		if !ok {
			return
		}

		messageID, err := urlParamID(r, "messageID")
		if err != nil {
			notFound(w, r, manager, renderer)
			return
		}

		message, err := messages.GetByID(ctx, messageID)
		if err != nil {
			if errors.Is(err, services.ErrMessageNotFound) {
				notFound(w, r, manager, renderer)
				return
			}
			internalError(w, r, err)
			return
		}

		author, err := users.GetByID(ctx, message.UserID)
		if err != nil {
			internalError(w, r, err)
			return
		}

		renderPage(w, r, manager, renderer, http.StatusOK, "messages_show", &templates.Data{
			CurrentUser: me,
			Message:     message,
			Author:      author,
		})
	}
}

// NewMessageDeleteHandler deletes the session user's own message. Deleting
// someone else's message is treated like any other unauthorized access.
func NewMessageDeleteHandler(remover MessageRemover, manager *sessions.Manager, renderer *templates.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, ok := sessionUserID(r)
		if !ok {
			unauthorized(w, r, manager)
			return
		}

		messageID, err := urlParamID(r, "messageID")
		if err != nil {
			notFound(w, r, manager, renderer)
			return
		}

		if err := remover.Delete(r.Context(), me, messageID); err != nil {
			switch {
			case errors.Is(err, services.ErrMessageNotFound):
				notFound(w, r, manager, renderer)
			case errors.Is(err, services.ErrNotMessageOwner):
				unauthorized(w, r, manager)
			default:
				internalError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/users/%d", me), http.StatusFound)
	}
}
