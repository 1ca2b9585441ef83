package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
)

func TestAPIRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockSignerUpper)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"bob","email":"bob@example.com","password":"secret123"}`,
			mockSetup: func(m *MockSignerUpper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob", "bob@example.com", "secret123", "").
					Return(fixtureUser(7, "bob"), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate username",
			body: `{"username":"bob","email":"bob@example.com","password":"secret123"}`,
			mockSetup: func(m *MockSignerUpper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob", "bob@example.com", "secret123", "").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Username already taken"},
		},
		{
			name: "missing field",
			body: `{"username":"bob"}`,
			mockSetup: func(m *MockSignerUpper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob", "", "", "").
					Return(nil, services.ErrMissingField)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Username, email and password are required"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","email":"bob@example.com","password":"secret123"}`,
			mockSetup: func(m *MockSignerUpper) {
				m.EXPECT().
					Signup(gomock.Any(), "bob", "bob@example.com", "secret123", "").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSignerUpper(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAPIRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != nil {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
		})
	}
}

func TestAPIRegisterHandler_NeverLeaksPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := fixtureUser(7, "bob")
	stored.PasswordHash = "$2a$10$something"

	mockSvc := NewMockSignerUpper(ctrl)
	mockSvc.EXPECT().
		Signup(gomock.Any(), "bob", "bob@example.com", "secret123", "").
		Return(stored, nil)

	handler := NewAPIRegisterHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register",
		bytes.NewBufferString(`{"username":"bob","email":"bob@example.com","password":"secret123"}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp models.User
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "bob", resp.Username)
	assert.Empty(t, resp.PasswordHash)
	assert.NotContains(t, rr.Body.String(), "$2a$10$")
}
