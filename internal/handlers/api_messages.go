package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/monitoring"
	"github.com/warblerhq/warbler/internal/services"
)

// APIErrorResponse represents a generic JSON error body
// swagger:model APIErrorResponse
type APIErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// APIPostMessageRequest represents the JSON body for posting a message
// swagger:model APIPostMessageRequest
type APIPostMessageRequest struct {
	// Message text, at most 140 characters
	// required: true
	// default: Hello from the API
	Text string `json:"text"`
}

// messageLimit reads the ?no= query parameter, 0 meaning the default.
func messageLimit(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("no"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NewAPIMessagesHandler returns the latest public messages.
// @Summary Latest messages
// @Description Returns the newest messages across all users, with their authors
// @Tags messages
// @Produce json
// @Param no query int false "Maximum number of messages" default(100)
// @Success 200 {array} models.TimelineMessage "Messages, newest first"
// @Router /msgs [get]
func NewAPIMessagesHandler(messages MessageProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := messages.Latest(r.Context(), messageLimit(r))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(APIErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(list)
	}
}

// NewAPIUserMessagesHandler returns one user's messages.
// @Summary A user's messages
// @Description Returns the named user's messages, newest first
// @Tags messages
// @Produce json
// @Param username path string true "Username"
// @Param no query int false "Maximum number of messages" default(100)
// @Success 200 {array} models.Message "Messages, newest first"
// @Failure 404 {object} handlers.APIErrorResponse "Unknown user"
// @Router /users/{username}/msgs [get]
func NewAPIUserMessagesHandler(users UserProvider, messages MessageProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := users.GetByUsername(ctx, urlParamUsername(r))
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(APIErrorResponse{Error: "User not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(APIErrorResponse{Error: "Internal server error"})
			return
		}

		list, err := messages.GetByUser(ctx, user.ID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(APIErrorResponse{Error: "Internal server error"})
			return
		}

		if limit := messageLimit(r); limit > 0 && len(list) > limit {
			list = list[:limit]
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(list)
	}
}

// NewAPIPostMessageHandler stores a message for the token's user.
// @Summary Post a message
// @Description Stores a new message owned by the authenticated user
// @Tags messages
// @Accept json
// @Produce json
// @Param postMessageRequest body handlers.APIPostMessageRequest true "Message to post"
// @Success 201 {object} models.Message "Stored message"
// @Failure 400 {object} handlers.APIErrorResponse "Empty or oversized text"
// @Failure 401 {object} handlers.APIErrorResponse "Missing or invalid token"
// @Router /msgs [post]
// @Security BearerAuth
func NewAPIPostMessageHandler(poster MessagePoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, ok := sessionUserID(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(APIErrorResponse{Error: "Unauthorized"})
			return
		}

		var req APIPostMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(APIErrorResponse{Error: "invalid request body"})
			return
		}

		message, err := poster.Post(r.Context(), me, req.Text)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyMessage),
				errors.Is(err, services.ErrMessageTooLong):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(APIErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(APIErrorResponse{Error: "Internal server error"})
			}
			return
		}

		monitoring.MessagesPosted.Inc()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(message)
	}
}
