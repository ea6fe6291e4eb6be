package details

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/task-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/task-tracker/internal/models"
	"github.com/magabrotheeeer/task-tracker/internal/storage/mongodb"
)

// MockService реализует интерфейс details.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Details(ctx context.Context, callerID string) (*models.User, error) {
	args := m.Called(ctx, callerID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestDetailsHandler(t *testing.T) {
	user := &models.User{
		ID:           "user-1",
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "$2a$10$secret",
	}

	tests := []struct {
		name           string
		userID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "данные текущего пользователя",
			userID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Details", mock.Anything, "user-1").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"ann@x.com"`,
		},
		{
			name:   "пользователь не найден",
			userID: "ghost",
			setupMock: func(m *MockService) {
				m.On("Details", mock.Anything, "ghost").Return(nil, mongodb.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"user not found"`,
		},
		{
			name:           "отсутствует авторизация",
			userID:         "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodGet, "/userdeets", nil)
			if tt.userID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.UserID, tt.userID)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}

	t.Run("хэш пароля не попадает в ответ", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("Details", mock.Anything, "user-1").Return(user, nil)
		handler := New(newNoopLogger(), mockService)

		req := httptest.NewRequest(http.MethodGet, "/userdeets", nil)
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserID, "user-1"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.NotContains(t, rec.Body.String(), "$2a$10$secret")
	})
}
