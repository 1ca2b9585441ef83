package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/monitoring"
	"github.com/warblerhq/warbler/internal/services"
)

// SessionOpener defines the interface that mints API session tokens.
type SessionOpener interface {
	Open(ctx context.Context, userID int64) (string, error)
}

// APILoginRequest represents the JSON body for user login
// swagger:model APILoginRequest
type APILoginRequest struct {
	// Username
	// required: true
	// default: warbler_fan
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// APILoginResponse represents a successful login response
// swagger:model APILoginResponse
type APILoginResponse struct {
	// Session token, passed back as Authorization: Bearer
	Token string `json:"token"`
}

// APILoginErrorResponse represents an error response for login
// swagger:model APILoginErrorResponse
type APILoginErrorResponse struct {
	// Error message
	// default: Invalid username or password
	Error string `json:"error"`
}

// NewAPILoginHandler returns an HTTP handler for JSON login.
// @Summary User login
// @Description Authenticates the user, opens a session and returns its token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.APILoginRequest true "Login request"
// @Success 200 {object} handlers.APILoginResponse "Session token returned"
// @Failure 400 {object} handlers.APILoginErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.APILoginErrorResponse "Invalid username or password"
// @Router /login [post]
func NewAPILoginHandler(auth Authenticator, opener SessionOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req APILoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(APILoginErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := auth.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist),
				errors.Is(err, services.ErrInvalidCredentials):
				reason := "invalid_credentials"
				if errors.Is(err, services.ErrUserDoesNotExist) {
					reason = "unknown_user"
				}
				monitoring.LoginFailure.WithLabelValues(reason).Inc()

				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(APILoginErrorResponse{
					Error: "Invalid username or password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(APILoginErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		token, err := opener.Open(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to open session", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(APILoginErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		monitoring.LoginSuccess.Inc()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(APILoginResponse{
			Token: token,
		})
	}
}
