package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fruit-order-service/middlewares"
	"fruit-order-service/models"
	"fruit-order-service/payment"
)

type PaymentController struct {
	processor *payment.Processor
}

func NewPaymentController(processor *payment.Processor) *PaymentController {
	return &PaymentController{processor: processor}
}

// StartPayment 启动一次模拟支付，结果稍后轮询
func (ctl *PaymentController) StartPayment(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("payment", "start", status)
	}()

	var req struct {
		DeliveryDate  string `json:"delivery_date" binding:"required"`
		PaymentMethod string `json:"payment_method" binding:"required,oneof=UPI Card Cash"`
		Notes         string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := ctl.processor.Start(req.DeliveryDate, models.PaymentMethod(req.PaymentMethod), req.Notes)
	c.JSON(http.StatusAccepted, sess)
}

func (ctl *PaymentController) GetPayment(c *gin.Context) {
	sess, ok := ctl.processor.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment session not found"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// RetryPayment 只允许对失败态的会话重试
func (ctl *PaymentController) RetryPayment(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("payment", "retry", status)
	}()

	sess, ok := ctl.processor.Retry(c.Param("id"))
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Payment session is not retryable"})
		return
	}
	c.JSON(http.StatusAccepted, sess)
}

// CancelPayment 页面销毁时调用，取消挂起的定时器
func (ctl *PaymentController) CancelPayment(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("payment", "cancel", status)
	}()

	if !ctl.processor.Cancel(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment session cancelled"})
}
