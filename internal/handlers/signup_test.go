package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/services"
	"github.com/warblerhq/warbler/internal/sessions"
)

func postForm(path string, form url.Values, session *sessions.Session) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return withSession(req, session)
}

func TestSignupPageHandler(t *testing.T) {
	manager, _ := newTestSessionManager()
	handler := NewSignupPageHandler(manager, newTestRenderer(t))

	req := withSession(httptest.NewRequest(http.MethodGet, "/signup", nil), sessions.NewSession())
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Join Warbler today.")
}

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	form := url.Values{
		"username": {"bob"},
		"email":    {"bob@example.com"},
		"password": {"secret123"},
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockSignerUpper)
		expectedCode int
		wantLocation string
		bodyContains string
	}{
		{
			name: "success logs the new user in and goes home",
			mockSetup: func(m *MockSignerUpper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob", "bob@example.com", "secret123", "").
					Return(fixtureUser(7, "bob"), nil)
			},
			expectedCode: http.StatusFound,
			wantLocation: "/",
		},
		{
			name: "taken username re-renders the form",
			mockSetup: func(m *MockSignerUpper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob", "bob@example.com", "secret123", "").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusOK,
			bodyContains: "Username already taken",
		},
		{
			name: "missing field re-renders the form",
			mockSetup: func(m *MockSignerUpper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob", "bob@example.com", "secret123", "").
					Return(nil, services.ErrMissingField)
			},
			expectedCode: http.StatusOK,
			bodyContains: "required",
		},
		{
			name: "storage failure is a server error",
			mockSetup: func(m *MockSignerUpper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob", "bob@example.com", "secret123", "").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSignerUpper(ctrl)
			tt.mockSetup(mockSvc)

			manager, store := newTestSessionManager()
			handler := NewSignupHandler(mockSvc, manager, newTestRenderer(t))

			session := sessions.NewSession()
			rr := httptest.NewRecorder()
			handler(rr, postForm("/signup", form, session))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
			if tt.bodyContains != "" {
				assert.Contains(t, rr.Body.String(), tt.bodyContains)
			}

			if tt.expectedCode == http.StatusFound {
				// The session must now be persisted and logged in.
				saved, err := store.Get(context.Background(), session.ID)
				require.NoError(t, err)
				require.NotNil(t, saved.UserID)
				assert.Equal(t, int64(7), *saved.UserID)
				assert.NotEmpty(t, rr.Result().Cookies(), "signup must set the session cookie")
			}
		})
	}
}

func TestSignupHandler_StickyFormValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSignerUpper(ctrl)
	mockSvc.EXPECT().
		Signup(gomock.Any(), "bob", "bob@example.com", "secret123", "").
		Return(nil, services.ErrUserAlreadyExists)

	manager, _ := newTestSessionManager()
	handler := NewSignupHandler(mockSvc, manager, newTestRenderer(t))

	form := url.Values{
		"username": {"bob"},
		"email":    {"bob@example.com"},
		"password": {"secret123"},
	}
	rr := httptest.NewRecorder()
	handler(rr, postForm("/signup", form, sessions.NewSession()))

	body := rr.Body.String()
	assert.Contains(t, body, `value="bob"`)
	assert.Contains(t, body, `value="bob@example.com"`)
	assert.NotContains(t, body, "secret123", "passwords never echo back")
}
