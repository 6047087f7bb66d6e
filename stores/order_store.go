package stores

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"fruit-order-service/models"
)

// OrderStore 管理本地订单历史，最新的排在最前
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
	blobs  BlobStore
	now    func() time.Time
}

func NewOrderStore(blobs BlobStore) *OrderStore {
	s := &OrderStore{blobs: blobs, now: time.Now}

	if data := loadBlob(blobs, OrdersStorageKey); data != nil {
		var orders []models.Order
		if err := json.Unmarshal(data, &orders); err != nil {
			log.Warn().Err(err).Msg("Discarding malformed orders blob")
		} else {
			s.orders = orders
		}
	}
	return s
}

// PlaceOrder 把购物车条目按值快照成订单并插入历史头部。
// 不负责清空购物车，由支付流程在成功后调用 ClearCart。
func (s *OrderStore) PlaceOrder(cartItems []models.CartItem, deliveryDate string, paymentMethod models.PaymentMethod, notes string) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.OrderItem, 0, len(cartItems))
	var total float64
	for _, item := range cartItems {
		items = append(items, models.OrderItem{
			ProductID:    item.Product.ID,
			ProductName:  item.Product.Name,
			Quantity:     item.Quantity,
			PricePerUnit: item.Product.PricePerUnit,
			Unit:         item.Product.Unit,
		})
		total += item.Product.PricePerUnit * float64(item.Quantity)
	}

	now := s.now()
	order := models.Order{
		// 毫秒时间戳ID，同一毫秒内连续下单会撞号
		ID:            fmt.Sprintf("ORD%d", now.UnixMilli()),
		Items:         items,
		Total:         total,
		Status:        models.OrderStatusPlaced,
		Date:          now,
		DeliveryDate:  deliveryDate,
		Notes:         notes,
		PaymentMethod: paymentMethod,
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.persistLocked()
	return order
}

func (s *OrderStore) GetOrderByID(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) persistLocked() {
	data, err := json.Marshal(s.orders)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal orders")
		return
	}
	persistAsync(s.blobs, OrdersStorageKey, data)
}
