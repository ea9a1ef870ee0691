// Package dubizzle предоставляет маршруты для основного приложения.
package dubizzle

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ragheeddamaj/dubizzle-mini/internal/config"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/ad/create"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/ad/list"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/ad/listbyuser"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/ad/moderate"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/ad/pending"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/ad/read"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/ad/remove"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/ad/update"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/auth/login"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/auth/logout"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/auth/me"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/auth/register"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/categories"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/handlers/health"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/middlewarectx"
	adservice "github.com/ragheeddamaj/dubizzle-mini/internal/services/ad"
	authservice "github.com/ragheeddamaj/dubizzle-mini/internal/services/auth"
	moderationservice "github.com/ragheeddamaj/dubizzle-mini/internal/services/moderation"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	authService *authservice.AuthService, adService *adservice.AdService,
	moderationService *moderationservice.ModerationService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Личность из cookie разбирается для всех запросов, в том числе
		// анонимных: правила видимости объявлений зависят от роли.
		r.Use(middlewarectx.IdentityMiddleware(authService, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService, cfg.TokenTTL, cfg.IsProd()).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService, cfg.TokenTTL, cfg.IsProd()).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger).ServeHTTP)
		r.Get("/categories", categories.New(logger).ServeHTTP)
		r.Get("/auth/me", me.New(logger, authService).ServeHTTP)
		r.Get("/ads", list.New(logger, adService).ServeHTTP)
		r.Get("/ads/user/{userId}", listbyuser.New(logger, adService).ServeHTTP)

		// Группа, требующая валидной сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RequireAuth(logger))
			r.Post("/ads", create.New(logger, adService).ServeHTTP)
			r.Get("/ads/pending", pending.New(logger, adService).ServeHTTP)
			r.Put("/ads/{id}", update.New(logger, adService).ServeHTTP)
			r.Delete("/ads/{id}", remove.New(logger, adService).ServeHTTP)
			r.Put("/ads/moderate/{id}", moderate.New(logger, moderationService).ServeHTTP)
		})

		// Чтение объявления остается открытым: правила видимости применяет сервис
		r.Get("/ads/{id}", read.New(logger, adService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
	r.Get("/health", health.New(logger).ServeHTTP)
}
