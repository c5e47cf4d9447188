package register

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/krotovalex/inventory-keeper/internal/models"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, username, password, role string) (string, error) {
	args := m.Called(ctx, username, password, role)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful registration without role",
			body: `{"username": "newuser", "password": "password123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "newuser", "password123", "").
					Return("some-uid", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"username":"newuser"`,
		},
		{
			name: "successful registration with partner role",
			body: `{"username": "newuser", "password": "password123", "role": "partner"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "newuser", "password123", "partner").
					Return("some-uid", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"uid":"some-uid"`,
		},
		{
			name:           "invalid json body",
			body:           `{username: newuser}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "username too short",
			body:           `{"username": "ab", "password": "password123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Username must be at least 3 characters long`,
		},
		{
			name:           "password too short",
			body:           `{"username": "newuser", "password": "12345"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password must be at least 6 characters long`,
		},
		{
			name:           "unknown role",
			body:           `{"username": "newuser", "password": "password123", "role": "superuser"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Role must be one of: admin partner`,
		},
		{
			name: "username already taken",
			body: `{"username": "existing", "password": "password123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "existing", "password123", "").
					Return("", models.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"username already taken"`,
		},
		{
			name: "service error",
			body: `{"username": "newuser", "password": "password123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "newuser", "password123", "").
					Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
