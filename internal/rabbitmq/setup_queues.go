package rabbitmq

// NotificationsExchange - exchange, в который планировщик публикует
// напоминания об истекающих абонементах.
const NotificationsExchange = "notifications"

// QueueConfig описывает очередь и ключ маршрутизации для нее.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает список очередей уведомлений.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notifications.expiry", RoutingKey: "expiry"},
	}
}
