package models

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "Placed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "Card"
	PaymentCash PaymentMethod = "Cash"
)

// OrderItem 下单时按值快照，和商品目录解耦
type OrderItem struct {
	ProductID    string      `json:"productId"`
	ProductName  string      `json:"productName"`
	Quantity     int         `json:"quantity"`
	PricePerUnit float64     `json:"pricePerUnit"`
	Unit         ProductUnit `json:"unit"`
}

type Order struct {
	ID            string        `json:"id"`
	Items         []OrderItem   `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	Date          time.Time     `json:"date"`
	DeliveryDate  string        `json:"deliveryDate"`
	Notes         string        `json:"notes,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

type OrderItemDetail struct {
	ProductID    string      `json:"productId"`
	ProductName  string      `json:"productName"`
	Quantity     int         `json:"quantity"`
	PricePerUnit float64     `json:"pricePerUnit"`
	Unit         ProductUnit `json:"unit"`
	Subtotal     float64     `json:"subtotal"`
}

type OrderResponse struct {
	ID            string            `json:"id"`
	Total         float64           `json:"total"`
	Status        OrderStatus       `json:"status"`
	Date          time.Time         `json:"date"`
	DeliveryDate  string            `json:"deliveryDate"`
	Notes         string            `json:"notes,omitempty"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	Items         []OrderItemDetail `json:"items"`
}

type OrderEvent struct {
	OrderID  string    `json:"order_id"`
	Type     string    `json:"type"` // created, payment_failed
	Status   string    `json:"status"`
	Total    float64   `json:"total"`
	Occurred time.Time `json:"occurred"`
}
