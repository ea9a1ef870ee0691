package rabbitmq

import (
	"github.com/streadway/amqp"

	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// NotificationPublisher публикует события модерации в очередь уведомлений.
type NotificationPublisher struct {
	ch *amqp.Channel
}

// NewNotificationPublisher создает новый экземпляр NotificationPublisher.
func NewNotificationPublisher(ch *amqp.Channel) *NotificationPublisher {
	return &NotificationPublisher{ch: ch}
}

// PublishModerated отправляет событие о решении модератора.
func (p *NotificationPublisher) PublishModerated(event models.ModerationEvent) error {
	return PublishMessage(p.ch, Exchange, ModeratedRoutingKey, event)
}
