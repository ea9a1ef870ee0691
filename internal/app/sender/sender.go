// Package sender собирает воркер, который читает события модерации из
// очереди и отправляет владельцам объявлений письма с результатом.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/ragheeddamaj/dubizzle-mini/internal/config"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/rabbitmq"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/smtp"
	senderservice "github.com/ragheeddamaj/dubizzle-mini/internal/services/sender"
)

type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	newTransport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(logger, newTransport)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.ModeratedQueue, a.senderService.SendModerationResult)
	if err != nil {
		a.logger.Error("failed to start moderation queue consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("Sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
