package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/services"
)

// APIFollowsResponse lists who a user follows
// swagger:model APIFollowsResponse
type APIFollowsResponse struct {
	// Usernames the subject follows
	Follows []string `json:"follows"`
}

// APIFollowRequest asks to follow or unfollow a user on behalf of the
// token's user. Exactly one field must be set.
// swagger:model APIFollowRequest
type APIFollowRequest struct {
	// Username to follow
	Follow string `json:"follow,omitempty"`

	// Username to unfollow
	Unfollow string `json:"unfollow,omitempty"`
}

// NewAPIFollowsHandler lists the usernames the subject follows.
// @Summary Who a user follows
// @Description Returns the usernames the named user currently follows
// @Tags follows
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.APIFollowsResponse "Followed usernames"
// @Failure 401 {object} handlers.APIErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.APIErrorResponse "Unknown user"
// @Router /users/{username}/fllws [get]
// @Security BearerAuth
func NewAPIFollowsHandler(users UserProvider) http.HandlerFunc {
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

		following, err := users.Following(ctx, user.ID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(APIErrorResponse{Error: "Internal server error"})
			return
		}

		resp := APIFollowsResponse{Follows: make([]string, 0, len(following))}
		for _, followed := range following {
			resp.Follows = append(resp.Follows, followed.Username)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewAPIFollowHandler follows or unfollows a user as the token's user.
// @Summary Follow or unfollow
// @Description Adds or removes a follow edge from the authenticated user to the named one
// @Tags follows
// @Accept json
// @Param followRequest body handlers.APIFollowRequest true "Follow or unfollow request"
// @Success 204 "Edge updated"
// @Failure 400 {object} handlers.APIErrorResponse "Neither follow nor unfollow given"
// @Failure 401 {object} handlers.APIErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.APIErrorResponse "Unknown target user"
// @Router /fllws [post]
// @Security BearerAuth
func NewAPIFollowHandler(users UserProvider, actor FollowActor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		me, ok := sessionUserID(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(APIErrorResponse{Error: "Unauthorized"})
			return
		}

		var req APIFollowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(APIErrorResponse{Error: "invalid request body"})
			return
		}

		targetName := req.Follow
		if targetName == "" {
			targetName = req.Unfollow
		}
		if targetName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(APIErrorResponse{Error: "follow or unfollow is required"})
			return
		}

		target, err := users.GetByUsername(ctx, targetName)
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

		if req.Follow != "" {
			err = actor.Follow(ctx, me, target.ID)
		} else {
			err = actor.Unfollow(ctx, me, target.ID)
		}
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(APIErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
