// Package middlewarectx содержит HTTP middleware для разбора сессионной
// cookie и ограничения частоты запросов.
//
// IdentityMiddleware читает JWT из cookie auth_token и при валидном токене
// добавляет в контекст запроса личность пользователя. Невалидный или
// отсутствующий токен не является ошибкой: запрос продолжается анонимно,
// а проверки доступа выполняют сервисы.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/response"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/session"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// IdentityKey — ключ, под которым в контексте лежит *models.Identity.
const IdentityKey Key = "identity"

// SessionService описывает сервис, превращающий токен сессии в пользователя.
type SessionService interface {
	ResolveSession(ctx context.Context, token string) (*models.User, error)
}

// IdentityFromContext возвращает личность из контекста запроса,
// либо nil для анонимного запроса.
func IdentityFromContext(ctx context.Context) *models.Identity {
	identity, ok := ctx.Value(IdentityKey).(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}

// IdentityMiddleware разбирает cookie сессии и кладет личность в контекст.
func IdentityMiddleware(sessions SessionService, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.IdentityMiddleware"

			token := session.Token(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := sessions.ResolveSession(r.Context(), token)
			if err != nil {
				log.Error("failed to resolve session",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			identity := &models.Identity{
				UID:   user.UID,
				Email: user.Email,
				Role:  user.Role,
			}
			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth возвращает 401, если запрос не несет валидной сессии.
func RequireAuth(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IdentityFromContext(r.Context()) == nil {
				log.Error("request without valid session",
					slog.String("request_id", middleware.GetReqID(r.Context())))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
