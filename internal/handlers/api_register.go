package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/monitoring"
	"github.com/warblerhq/warbler/internal/services"
)

// APIRegisterRequest represents the JSON body for user registration
// swagger:model APIRegisterRequest
type APIRegisterRequest struct {
	// Username
	// required: true
	// default: warbler_fan
	Username string `json:"username"`

	// Email
	// required: true
	// default: fan@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Optional profile image URL
	ImageURL string `json:"image_url"`
}

// APIRegisterErrorResponse represents an error response for registration
// swagger:model APIRegisterErrorResponse
type APIRegisterErrorResponse struct {
	// Error message
	// default: Username already taken
	Error string `json:"error"`
}

// NewAPIRegisterHandler returns an HTTP handler for JSON registration.
// @Summary Register a new user
// @Description Creates a user account and returns the stored profile. Username and email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.APIRegisterRequest true "Registration request"
// @Success 201 {object} models.User "Stored user"
// @Failure 400 {object} handlers.APIRegisterErrorResponse "Validation or uniqueness failure"
// @Router /register [post]
func NewAPIRegisterHandler(auth SignerUpper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req APIRegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(APIRegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := auth.Signup(r.Context(), req.Username, req.Email, req.Password, req.ImageURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(APIRegisterErrorResponse{
					Error: "Username already taken",
				})
			case errors.Is(err, services.ErrMissingField):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(APIRegisterErrorResponse{
					Error: "Username, email and password are required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(APIRegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		monitoring.RegisterSuccess.Inc()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}
