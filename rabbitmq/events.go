package rabbitmq

import (
	"time"

	"github.com/rs/zerolog/log"

	"fruit-order-service/models"
)

// EventBridge 把支付结果转成订单事件发布出去
type EventBridge struct {
	rmq *RabbitMQ
}

func NewEventBridge(rmq *RabbitMQ) *EventBridge {
	return &EventBridge{rmq: rmq}
}

func (b *EventBridge) OrderPlaced(order models.Order) {
	priority := 5            // 默认优先级
	if order.Total > 10000 { // 大额订单高优先级
		priority = 9
	}

	if err := b.rmq.PublishOrderEvent(order.ID, priority, "created"); err != nil {
		log.Error().Err(err).Str("order", order.ID).Msg("Failed to publish order created event")
	}

	// 设置延迟事件（15分钟后提醒确认配送安排）
	if err := b.rmq.PublishDelayedEvent(order.ID, 15*time.Minute, "delivery_reminder"); err != nil {
		log.Error().Err(err).Str("order", order.ID).Msg("Failed to publish delayed delivery reminder")
	}
}

func (b *EventBridge) PaymentFailed(sessionID string) {
	if err := b.rmq.PublishOrderEvent(sessionID, 8, "payment_failed"); err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("Failed to publish payment failed event")
	}
}
