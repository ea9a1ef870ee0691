// Package rabbitmq содержит подключение к брокеру, настройку очередей,
// публикацию и потребление сообщений о решениях модерации.
package rabbitmq

// Exchange — единый exchange уведомлений сервиса.
const Exchange = "notifications"

// ModeratedQueue — очередь событий о решениях модератора.
const ModeratedQueue = "notification.moderated"

// ModeratedRoutingKey — ключ маршрутизации для событий модерации.
const ModeratedRoutingKey = "moderated"

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди, которые должен объявить канал.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: ModeratedQueue, RoutingKey: ModeratedRoutingKey},
	}
}
