package moderate

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/middlewarectx"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
	services "github.com/ragheeddamaj/dubizzle-mini/internal/services/moderation"
)

// MockService реализует интерфейс moderate.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Moderate(ctx context.Context, actor models.Identity, adUID string, req models.DummyModeration) (*services.Result, error) {
	args := m.Called(ctx, actor, adUID, req)
	if res := args.Get(0); res != nil {
		return res.(*services.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestModerateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	moderator := &models.Identity{UID: "mod-1", Email: "mod@test.com", Role: models.RoleModerator}
	regular := &models.Identity{UID: "user-1", Email: "user@test.com", Role: models.RoleUser}

	tests := []struct {
		name           string
		adUID          string
		identity       *models.Identity
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное одобрение",
			adUID:       "ad-1",
			identity:    moderator,
			requestBody: models.DummyModeration{Status: models.StatusApproved},
			setupMock: func(m *MockService) {
				m.On("Moderate", mock.Anything, *moderator, "ad-1",
					mock.AnythingOfType("models.DummyModeration")).
					Return(&services.Result{ID: "ad-1", Status: models.StatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"approved"`,
		},
		{
			name:           "отсутствует авторизация",
			adUID:          "ad-1",
			identity:       nil,
			requestBody:    models.DummyModeration{Status: models.StatusApproved},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:           "недопустимый статус решения",
			adUID:          "ad-1",
			identity:       moderator,
			requestBody:    models.DummyModeration{Status: "deleted"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Status has an unsupported value`,
		},
		{
			name:        "обычный пользователь получает отказ",
			adUID:       "ad-1",
			identity:    regular,
			requestBody: models.DummyModeration{Status: models.StatusApproved},
			setupMock: func(m *MockService) {
				m.On("Moderate", mock.Anything, *regular, "ad-1",
					mock.AnythingOfType("models.DummyModeration")).
					Return(nil, apperr.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"moderator role required"}`,
		},
		{
			name:        "отклонение без причины",
			adUID:       "ad-1",
			identity:    moderator,
			requestBody: models.DummyModeration{Status: models.StatusRejected},
			setupMock: func(m *MockService) {
				m.On("Moderate", mock.Anything, *moderator, "ad-1",
					mock.AnythingOfType("models.DummyModeration")).
					Return(nil, apperr.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"rejection requires a reason"}`,
		},
		{
			name:        "объявление не найдено",
			adUID:       "ad-404",
			identity:    moderator,
			requestBody: models.DummyModeration{Status: models.StatusApproved},
			setupMock: func(m *MockService) {
				m.On("Moderate", mock.Anything, *moderator, "ad-404",
					mock.AnythingOfType("models.DummyModeration")).
					Return(nil, apperr.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"ad not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body bytes.Buffer
			assert.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))

			req := httptest.NewRequest(http.MethodPut, "/ads/moderate/"+tt.adUID, &body)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.adUID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.identity != nil {
				ctx = context.WithValue(ctx, middlewarectx.IdentityKey, tt.identity)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
