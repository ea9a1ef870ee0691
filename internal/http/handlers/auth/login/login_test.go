package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/session"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	args := m.Called(ctx, email, rawPassword)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
		expectCookie   bool
	}{
		{
			name:        "успешный вход устанавливает cookie",
			requestBody: Request{Email: "user@test.com", Password: "secret123"},
			setupMock: func(m *MockService) {
				user := &models.User{UID: "uid-1", Email: "user@test.com", Role: models.RoleUser}
				m.On("Login", mock.Anything, "user@test.com", "secret123").
					Return(user, "token-1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"user@test.com"`,
			expectCookie:   true,
		},
		{
			name:        "неверные учетные данные",
			requestBody: Request{Email: "user@test.com", Password: "wrongpass"},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "user@test.com", "wrongpass").
					Return(nil, "", apperr.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid email or password"}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "пустой пароль не проходит валидацию",
			requestBody:    Request{Email: "user@test.com"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Password is a required field`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: Request{Email: "user@test.com", Password: "secret123"},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "user@test.com", "secret123").
					Return(nil, "", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to login"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService, 7*24*time.Hour, false)

			var body bytes.Buffer
			switch v := tt.requestBody.(type) {
			case string:
				body.WriteString(v)
			default:
				assert.NoError(t, json.NewEncoder(&body).Encode(v))
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/login", &body)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			if tt.expectCookie {
				var found *http.Cookie
				for _, c := range w.Result().Cookies() {
					if c.Name == session.CookieName {
						found = c
					}
				}
				assert.NotNil(t, found, "auth_token cookie must be set")
				assert.Equal(t, "token-1", found.Value)
			}

			mockService.AssertExpectations(t)
		})
	}
}
