package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
)

func TestAPIFollowsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserProvider(ctrl)
	users.EXPECT().GetByUsername(gomock.Any(), "bob").Return(fixtureUser(1, "bob"), nil)
	users.EXPECT().Following(gomock.Any(), int64(1)).Return([]models.User{
		*fixtureUser(2, "dango"),
		*fixtureUser(3, "kazu"),
	}, nil)

	handler := NewAPIFollowsHandler(users)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/bob/fllws", nil)
	req = withURLParam(req, "username", "bob")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp APIFollowsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"dango", "kazu"}, resp.Follows)
}

func TestAPIFollowsHandler_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserProvider(ctrl)
	users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, services.ErrUserDoesNotExist)

	handler := NewAPIFollowsHandler(users)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/ghost/fllws", nil)
	req = withURLParam(req, "username", "ghost")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPIFollowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(users *MockUserProvider, actor *MockFollowActor)
		expectedCode int
	}{
		{
			name: "follow",
			body: `{"follow":"dango"}`,
			mockSetup: func(users *MockUserProvider, actor *MockFollowActor) {
				users.EXPECT().GetByUsername(gomock.Any(), "dango").Return(fixtureUser(2, "dango"), nil)
				actor.EXPECT().Follow(gomock.Any(), int64(1), int64(2)).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "unfollow",
			body: `{"unfollow":"dango"}`,
			mockSetup: func(users *MockUserProvider, actor *MockFollowActor) {
				users.EXPECT().GetByUsername(gomock.Any(), "dango").Return(fixtureUser(2, "dango"), nil)
				actor.EXPECT().Unfollow(gomock.Any(), int64(1), int64(2)).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "unknown target",
			body: `{"follow":"ghost"}`,
			mockSetup: func(users *MockUserProvider, actor *MockFollowActor) {
				users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "neither field",
			body:         `{}`,
			mockSetup:    func(users *MockUserProvider, actor *MockFollowActor) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := NewMockUserProvider(ctrl)
			actor := NewMockFollowActor(ctrl)
			tt.mockSetup(users, actor)

			handler := NewAPIFollowHandler(users, actor)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/fllws", bytes.NewBufferString(tt.body))
			req = withSession(req, loggedInSession(1))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAPIFollowHandler_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserProvider(ctrl)
	actor := NewMockFollowActor(ctrl)

	handler := NewAPIFollowHandler(users, actor)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fllws", bytes.NewBufferString(`{"follow":"dango"}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
