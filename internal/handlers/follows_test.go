package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
)

func TestFollowingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserProvider(ctrl)
	users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(fixtureUser(1, "bob"), nil).Times(2)
	users.EXPECT().Following(gomock.Any(), int64(1)).Return([]models.User{
		*fixtureUser(2, "dango"),
		*fixtureUser(3, "kazu"),
	}, nil)

	manager, _ := newTestSessionManager()
	handler := NewFollowingHandler(users, manager, newTestRenderer(t))

	req := withSession(httptest.NewRequest(http.MethodGet, "/users/1/following", nil), loggedInSession(1))
	req = withURLParam(req, "userID", "1")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<p>@dango</p>")
	assert.Contains(t, rr.Body.String(), "<p>@kazu</p>")
}

func TestFollowersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserProvider(ctrl)
	users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(fixtureUser(1, "bob"), nil)
	users.EXPECT().GetByID(gomock.Any(), int64(2)).Return(fixtureUser(2, "dango"), nil)
	users.EXPECT().Followers(gomock.Any(), int64(2)).Return([]models.User{*fixtureUser(1, "bob")}, nil)

	manager, _ := newTestSessionManager()
	handler := NewFollowersHandler(users, manager, newTestRenderer(t))

	req := withSession(httptest.NewRequest(http.MethodGet, "/users/2/followers", nil), loggedInSession(1))
	req = withURLParam(req, "userID", "2")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<p>@bob</p>")
}

func TestFollowingHandler_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserProvider(ctrl)
	users.EXPECT().GetByID(gomock.Any(), int64(1)).Return(fixtureUser(1, "bob"), nil)
	users.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, services.ErrUserDoesNotExist)

	manager, _ := newTestSessionManager()
	handler := NewFollowingHandler(users, manager, newTestRenderer(t))

	req := withSession(httptest.NewRequest(http.MethodGet, "/users/404/following", nil), loggedInSession(1))
	req = withURLParam(req, "userID", "404")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestFollowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockFollowActor)
		expectedCode int
		wantLocation string
	}{
		{
			name: "follow adds the edge and returns to the following list",
			mockSetup: func(m *MockFollowActor) {
				m.EXPECT().Follow(gomock.Any(), int64(1), int64(2)).Return(nil)
			},
			expectedCode: http.StatusFound,
			wantLocation: "/users/1/following",
		},
		{
			name: "unknown target is a 404",
			mockSetup: func(m *MockFollowActor) {
				m.EXPECT().Follow(gomock.Any(), int64(1), int64(2)).Return(services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := NewMockFollowActor(ctrl)
			tt.mockSetup(actor)

			manager, _ := newTestSessionManager()
			handler := NewFollowHandler(actor, manager, newTestRenderer(t))

			req := withSession(httptest.NewRequest(http.MethodPost, "/users/follow/2", nil), loggedInSession(1))
			req = withURLParam(req, "userID", "2")
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
		})
	}
}

func TestStopFollowingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := NewMockFollowActor(ctrl)
	actor.EXPECT().Unfollow(gomock.Any(), int64(1), int64(2)).Return(nil)

	manager, _ := newTestSessionManager()
	handler := NewStopFollowingHandler(actor, manager, newTestRenderer(t))

	req := withSession(httptest.NewRequest(http.MethodPost, "/users/stop-following/2", nil), loggedInSession(1))
	req = withURLParam(req, "userID", "2")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/users/1/following", rr.Header().Get("Location"))
}

func TestFollowHandler_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, store := newTestSessionManager()
	handler := NewFollowHandler(NewMockFollowActor(ctrl), manager, newTestRenderer(t))

	session := sessions.NewSession()
	req := withSession(httptest.NewRequest(http.MethodPost, "/users/follow/2", nil), session)
	req = withURLParam(req, "userID", "2")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	saved, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{middlewares.AccessUnauthorizedFlash}, saved.Flashes)
}
