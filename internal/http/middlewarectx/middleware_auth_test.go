package middlewarectx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/session"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

type SessionServiceMock struct{ mock.Mock }

func (m *SessionServiceMock) ResolveSession(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestIdentityMiddleware(t *testing.T) {
	user := &models.User{UID: "uid-1", Email: "user@test.com", Role: models.RoleModerator}

	tests := []struct {
		name         string
		cookie       string
		setupMock    func(*SessionServiceMock)
		wantIdentity bool
		wantStatus   int
	}{
		{
			name:   "валидная cookie кладет личность в контекст",
			cookie: "good-token",
			setupMock: func(m *SessionServiceMock) {
				m.On("ResolveSession", mock.Anything, "good-token").Return(user, nil).Once()
			},
			wantIdentity: true,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "запрос без cookie проходит анонимно",
			cookie:       "",
			setupMock:    func(_ *SessionServiceMock) {},
			wantIdentity: false,
			wantStatus:   http.StatusOK,
		},
		{
			name:   "невалидный токен проходит анонимно",
			cookie: "garbage",
			setupMock: func(m *SessionServiceMock) {
				m.On("ResolveSession", mock.Anything, "garbage").Return(nil, nil).Once()
			},
			wantIdentity: false,
			wantStatus:   http.StatusOK,
		},
		{
			name:   "ошибка хранилища дает 500",
			cookie: "good-token",
			setupMock: func(m *SessionServiceMock) {
				m.On("ResolveSession", mock.Anything, "good-token").
					Return(nil, errors.New("db error")).Once()
			},
			wantIdentity: false,
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(SessionServiceMock)
			tt.setupMock(sessions)

			var gotIdentity *models.Identity
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotIdentity = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/ads", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()

			IdentityMiddleware(sessions, newNoopLogger())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, called, "next handler must be called")
			}
			if tt.wantIdentity {
				assert.NotNil(t, gotIdentity)
				assert.Equal(t, "uid-1", gotIdentity.UID)
				assert.True(t, gotIdentity.IsModerator())
			} else if called {
				assert.Nil(t, gotIdentity)
			}

			sessions.AssertExpectations(t)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	t.Run("анонимный запрос получает 401", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()

		RequireAuth(newNoopLogger())(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("запрос с личностью проходит дальше", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		identity := &models.Identity{UID: "uid-1", Role: models.RoleUser}
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), IdentityKey, identity))
		w := httptest.NewRecorder()

		RequireAuth(newNoopLogger())(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
