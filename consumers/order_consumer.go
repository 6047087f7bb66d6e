package consumers

import (
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"fruit-order-service/config"
	"fruit-order-service/stores"
)

func StartOrderConsumer(ch *amqp.Channel, cfg *config.Config, orders *stores.OrderStore) {
	// 消费主订单队列
	msgs, err := ch.Consume(
		cfg.OrderQueue,
		"fruit-order-service", // consumers tag
		false,                 // auto-ack
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register consumers")
	}

	go func() {
		for msg := range msgs {
			processOrderMessage(msg, orders)
		}
	}()

	// 消费死信队列
	dlqMsgs, err := ch.Consume(
		cfg.DeadLetterQueue,
		"fruit-order-service-dlq", // consumers tag
		false,                     // auto-ack
		false,                     // exclusive
		false,                     // no-local
		false,                     // no-wait
		nil,
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to register DLQ consumers")
	}

	go func() {
		for msg := range dlqMsgs {
			processDeadLetterMessage(msg)
		}
	}()
}

func processOrderMessage(msg amqp.Delivery, orders *stores.OrderStore) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic in message processing")
		}
	}()

	parts := strings.Split(string(msg.Body), "|")
	if len(parts) < 2 {
		log.Warn().Str("body", string(msg.Body)).Msg("Invalid message format")
		err := msg.Nack(false, false)
		if err != nil {
			return
		} // 拒绝消息，不重新入队
		return
	}

	id := parts[0]
	eventType := parts[1]
	log.Info().Str("id", id).Str("type", eventType).Msg("Processing order event")

	// 根据事件类型处理
	switch eventType {
	case "created":
		handleOrderCreated(id, orders)
	case "payment_failed":
		handlePaymentFailed(id)
	case "delivery_reminder":
		handleDeliveryReminder(id, orders)
	default:
		log.Warn().Str("type", eventType).Msg("Unknown event type")
	}

	// 处理成功后确认消息
	err := msg.Ack(false)
	if err != nil {
		return
	}
}

func processDeadLetterMessage(msg amqp.Delivery) {
	log.Warn().Str("body", string(msg.Body)).Msg("Received dead letter")
	// 实际处理：记录、通知管理员等
	err := msg.Ack(false)
	if err != nil {
		return
	}
}

func handleOrderCreated(orderID string, orders *stores.OrderStore) {
	order, ok := orders.GetOrderByID(orderID)
	if !ok {
		log.Warn().Str("order", orderID).Msg("Order not found for created event")
		return
	}
	// 实际业务逻辑：通知仓库备货、推送确认等
	log.Info().Str("order", order.ID).Float64("total", order.Total).Msg("Handling order created")
}

func handlePaymentFailed(sessionID string) {
	// 支付失败是预期结果，记录后等用户重试
	log.Info().Str("session", sessionID).Msg("Handling payment failure")
}

func handleDeliveryReminder(orderID string, orders *stores.OrderStore) {
	order, ok := orders.GetOrderByID(orderID)
	if !ok {
		log.Warn().Str("order", orderID).Msg("Order not found for delivery reminder")
		return
	}
	log.Info().Str("order", order.ID).Str("delivery_date", order.DeliveryDate).Msg("Delivery reminder due")
}
