package stores

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"fruit-order-service/models"
)

// CartStore 管理当前会话的购物车，内存态为准，变更后整表异步落盘
type CartStore struct {
	mu    sync.RWMutex
	items []models.CartItem
	blobs BlobStore
}

func NewCartStore(blobs BlobStore) *CartStore {
	s := &CartStore{blobs: blobs}

	// 启动时恢复一次，坏数据当空购物车
	if data := loadBlob(blobs, CartStorageKey); data != nil {
		var items []models.CartItem
		if err := json.Unmarshal(data, &items); err != nil {
			log.Warn().Err(err).Msg("Discarding malformed cart blob")
		} else {
			s.items = items
		}
	}
	return s
}

// AddToCart 同一商品已存在时累加数量，购物车内按商品ID去重
func (s *CartStore) AddToCart(product models.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			s.persistLocked()
			return
		}
	}
	s.items = append(s.items, models.CartItem{Product: product, Quantity: quantity})
	s.persistLocked()
}

// UpdateQuantity 直接覆盖数量；数量 <= 0 等价于移除
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		s.persistLocked()
		return
	}

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persistLocked()
}

// RemoveFromCart 不存在时静默忽略
func (s *CartStore) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	s.persistLocked()
}

func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked()
}

func (s *CartStore) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) GetTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.items {
		total += item.Product.PricePerUnit * float64(item.Quantity)
	}
	return total
}

func (s *CartStore) GetItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *CartStore) removeLocked(productID string) {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *CartStore) persistLocked() {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal cart")
		return
	}
	persistAsync(s.blobs, CartStorageKey, data)
}
