package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fruit-order-service/middlewares"
	"fruit-order-service/models"
	"fruit-order-service/stores"
)

type OrderController struct {
	orders *stores.OrderStore
}

func NewOrderController(orders *stores.OrderStore) *OrderController {
	return &OrderController{orders: orders}
}

// GetOrders 订单历史，最新的在前
func (ctl *OrderController) GetOrders(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("order", "list", status)
	}()

	orders := ctl.orders.Orders()
	out := make([]models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, out)
}

func (ctl *OrderController) GetOrderDetails(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("order", "details", status)
	}()

	order, ok := ctl.orders.GetOrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// HandleDeadLetter 死信队列处理函数
func (ctl *OrderController) HandleDeadLetter(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("order", "dead_letter", status)
	}()

	var deadLetter struct {
		OrderID string `json:"order_id"`
		Reason  string `json:"reason"`
	}

	if err := c.ShouldBindJSON(&deadLetter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Warn().Str("order", deadLetter.OrderID).Str("reason", deadLetter.Reason).Msg("Handling dead letter")

	// 实际处理逻辑：记录、通知管理员等
	c.JSON(http.StatusOK, gin.H{"message": "Dead letter processed"})
}

func toOrderResponse(order models.Order) models.OrderResponse {
	items := make([]models.OrderItemDetail, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.OrderItemDetail{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
			Unit:         item.Unit,
			Subtotal:     item.PricePerUnit * float64(item.Quantity),
		})
	}

	return models.OrderResponse{
		ID:            order.ID,
		Total:         order.Total,
		Status:        order.Status,
		Date:          order.Date,
		DeliveryDate:  order.DeliveryDate,
		Notes:         order.Notes,
		PaymentMethod: order.PaymentMethod,
		Items:         items,
	}
}
