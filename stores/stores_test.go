package stores

import (
	"context"
	"sync"

	"fruit-order-service/models"
)

// memoryBlobStore 测试用内存持久化
type memoryBlobStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{data: make(map[string][]byte)}
}

func (m *memoryBlobStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

func (m *memoryBlobStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryBlobStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryBlobStore) get(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

func (m *memoryBlobStore) set(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
}

func testProduct(id, name string, price float64) models.Product {
	return models.Product{
		ID:           id,
		Name:         name,
		Category:     models.CategorySeasonal,
		PricePerUnit: price,
		Unit:         models.UnitKg,
		Stock:        100,
	}
}
