package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fruit-order-service/catalog"
	"fruit-order-service/config"
	"fruit-order-service/middlewares"
	"fruit-order-service/stores"
)

type CartController struct {
	cart *stores.CartStore
	cfg  *config.Config
}

func NewCartController(cart *stores.CartStore, cfg *config.Config) *CartController {
	return &CartController{cart: cart, cfg: cfg}
}

func (ctl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":      ctl.cart.Items(),
		"total":      ctl.cart.GetTotal(),
		"item_count": ctl.cart.GetItemCount(),
	})
}

// AddItem 同一商品重复添加时数量累加
func (ctl *CartController) AddItem(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("cart", "add", status)
	}()

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := catalog.GetProductByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	ctl.cart.AddToCart(product, req.Quantity)
	c.JSON(http.StatusOK, gin.H{
		"items":      ctl.cart.Items(),
		"item_count": ctl.cart.GetItemCount(),
	})
}

// UpdateItem 数量 <= 0 视同删除
func (ctl *CartController) UpdateItem(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("cart", "update", status)
	}()

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctl.cart.UpdateQuantity(c.Param("productId"), *req.Quantity)
	c.JSON(http.StatusOK, gin.H{
		"items":      ctl.cart.Items(),
		"item_count": ctl.cart.GetItemCount(),
	})
}

func (ctl *CartController) RemoveItem(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("cart", "remove", status)
	}()

	ctl.cart.RemoveFromCart(c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{
		"items":      ctl.cart.Items(),
		"item_count": ctl.cart.GetItemCount(),
	})
}

func (ctl *CartController) ClearCart(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordStoreOperation("cart", "clear", status)
	}()

	ctl.cart.ClearCart()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// GetCheckoutSummary 结算页汇总：满额免配送费
func (ctl *CartController) GetCheckoutSummary(c *gin.Context) {
	total := ctl.cart.GetTotal()

	deliveryCharge := ctl.cfg.DeliveryCharge
	if total >= ctl.cfg.FreeDeliveryAbove {
		deliveryCharge = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"total":               total,
		"item_count":          ctl.cart.GetItemCount(),
		"delivery_charge":     deliveryCharge,
		"grand_total":         total + deliveryCharge,
		"free_delivery_above": ctl.cfg.FreeDeliveryAbove,
	})
}
