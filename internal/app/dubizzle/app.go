// Package dubizzle собирает основной HTTP-сервис доски объявлений:
// подключение к базе, миграции, кеш, брокер уведомлений, сервисы и маршруты.
package dubizzle

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/ragheeddamaj/dubizzle-mini/internal/cache"
	"github.com/ragheeddamaj/dubizzle-mini/internal/config"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/jwt"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/rabbitmq"
	"github.com/ragheeddamaj/dubizzle-mini/internal/migrations"
	adservice "github.com/ragheeddamaj/dubizzle-mini/internal/services/ad"
	authservice "github.com/ragheeddamaj/dubizzle-mini/internal/services/auth"
	moderationservice "github.com/ragheeddamaj/dubizzle-mini/internal/services/moderation"
	"github.com/ragheeddamaj/dubizzle-mini/internal/storage/repository"
)

// App держит собранный HTTP-сервер и ресурсы, которые нужно закрыть
// при остановке. Соединения создаются в New и закрываются в Run,
// глобального состояния подключений нет.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// New создает приложение: открывает соединения, применяет миграции
// и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}
	publisher := rabbitmq.NewNotificationPublisher(ch)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	adService := adservice.NewAdService(db, cacheRedis, logger)
	moderationService := moderationservice.NewModerationService(db, cacheRedis, publisher, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, authService, adService, moderationService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
		conn:   conn,
		ch:     ch,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста,
// после чего останавливает сервер и закрывает соединения.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close rabbitmq channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close rabbitmq connection", sl.Err(err))
	}
	if err := a.cache.Db.Close(); err != nil {
		a.logger.Error("failed to close redis client", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
}
