package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
)

func timelineFixture() []models.TimelineMessage {
	return []models.TimelineMessage{
		{
			Message:  models.Message{ID: 2, UserID: 1, Text: "newest", CreatedAt: time.Now()},
			Username: "bob",
			ImageURL: models.DefaultImageURL,
		},
		{
			Message:  models.Message{ID: 1, UserID: 2, Text: "older", CreatedAt: time.Now().Add(-time.Hour)},
			Username: "dango",
			ImageURL: models.DefaultImageURL,
		},
	}
}

func TestAPIMessagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messages := NewMockMessageProvider(ctrl)
	messages.EXPECT().Latest(gomock.Any(), 0).Return(timelineFixture(), nil)

	handler := NewAPIMessagesHandler(messages)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/msgs", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []models.TimelineMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "newest", resp[0].Text)
	assert.Equal(t, "bob", resp[0].Username)
}

func TestAPIMessagesHandler_LimitParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messages := NewMockMessageProvider(ctrl)
	messages.EXPECT().Latest(gomock.Any(), 5).Return(nil, nil)

	handler := NewAPIMessagesHandler(messages)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/msgs?no=5", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAPIUserMessagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		query        string
		mockSetup    func(users *MockUserProvider, messages *MockMessageProvider)
		expectedCode int
		expectedLen  int
	}{
		{
			name:     "returns the user's messages",
			username: "bob",
			mockSetup: func(users *MockUserProvider, messages *MockMessageProvider) {
				users.EXPECT().GetByUsername(gomock.Any(), "bob").Return(fixtureUser(1, "bob"), nil)
				messages.EXPECT().GetByUser(gomock.Any(), int64(1)).Return([]models.Message{
					{ID: 2, UserID: 1, Text: "two"},
					{ID: 1, UserID: 1, Text: "one"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:     "no parameter caps the list",
			username: "bob",
			query:    "?no=1",
			mockSetup: func(users *MockUserProvider, messages *MockMessageProvider) {
				users.EXPECT().GetByUsername(gomock.Any(), "bob").Return(fixtureUser(1, "bob"), nil)
				messages.EXPECT().GetByUser(gomock.Any(), int64(1)).Return([]models.Message{
					{ID: 2, UserID: 1, Text: "two"},
					{ID: 1, UserID: 1, Text: "one"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:     "unknown user",
			username: "ghost",
			mockSetup: func(users *MockUserProvider, messages *MockMessageProvider) {
				users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := NewMockUserProvider(ctrl)
			messages := NewMockMessageProvider(ctrl)
			tt.mockSetup(users, messages)

			handler := NewAPIUserMessagesHandler(users, messages)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+tt.username+"/msgs"+tt.query, nil)
			req = withURLParam(req, "username", tt.username)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []models.Message
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestAPIPostMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		session      *sessions.Session
		mockSetup    func(m *MockMessagePoster)
		expectedCode int
	}{
		{
			name:    "posts as the token's user",
			body:    `{"text":"Hello from the API"}`,
			session: loggedInSession(3),
			mockSetup: func(m *MockMessagePoster) {
				m.EXPECT().
					Post(gomock.Any(), int64(3), "Hello from the API").
					Return(&models.Message{ID: 9, UserID: 3, Text: "Hello from the API", CreatedAt: time.Now()}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "empty text",
			body:    `{"text":""}`,
			session: loggedInSession(3),
			mockSetup: func(m *MockMessagePoster) {
				m.EXPECT().
					Post(gomock.Any(), int64(3), "").
					Return(nil, services.ErrEmptyMessage)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "anonymous",
			body:         `{"text":"Hello"}`,
			session:      sessions.NewSession(),
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poster := NewMockMessagePoster(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(poster)
			}

			handler := NewAPIPostMessageHandler(poster)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/msgs", bytes.NewBufferString(tt.body))
			req = withSession(req, tt.session)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp models.Message
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, int64(9), resp.ID)
				assert.Equal(t, int64(3), resp.UserID)
			}
		})
	}
}
