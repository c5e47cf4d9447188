package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/krotovalex/inventory-keeper/internal/models"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateQuantity(ctx context.Context, name string, quantity int) error {
	args := m.Called(ctx, name, quantity)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name           string
		urlParam       string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "successful update",
			urlParam: "Widget",
			body:     `{"quantity": 7}`,
			setupMock: func(m *MockService) {
				m.On("UpdateQuantity", mock.Anything, "Widget", 7).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:     "zero quantity allowed",
			urlParam: "Widget",
			body:     `{"quantity": 0}`,
			setupMock: func(m *MockService) {
				m.On("UpdateQuantity", mock.Anything, "Widget", 0).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "invalid json body",
			urlParam:       "Widget",
			body:           `{quantity: seven}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "negative quantity",
			urlParam:       "Widget",
			body:           `{"quantity": -3}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Quantity must be greater than or equal to 0`,
		},
		{
			name:     "product not found",
			urlParam: "Phantom",
			body:     `{"quantity": 7}`,
			setupMock: func(m *MockService) {
				m.On("UpdateQuantity", mock.Anything, "Phantom", 7).
					Return(models.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"product not found"`,
		},
		{
			name:     "service error",
			urlParam: "Widget",
			body:     `{"quantity": 7}`,
			setupMock: func(m *MockService) {
				m.On("UpdateQuantity", mock.Anything, "Widget", 7).
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not update quantity"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodPut, "/products/"+tt.urlParam, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("name", tt.urlParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
