package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruit-order-service/models"
)

func TestOrderStore_PlaceOrder(t *testing.T) {
	store := NewOrderStore(nil)
	cartItems := []models.CartItem{
		{Product: testProduct("1", "Mango", 450), Quantity: 2},
	}

	order := store.PlaceOrder(cartItems, "2024-01-01", models.PaymentUPI, "")

	assert.Equal(t, 2*450.0, order.Total)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, "2024-01-01", order.DeliveryDate)
	assert.Equal(t, models.PaymentUPI, order.PaymentMethod)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Mango", order.Items[0].ProductName)

	orders := store.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrderStore_SnapshotIsolation(t *testing.T) {
	store := NewOrderStore(nil)
	cartItems := []models.CartItem{
		{Product: testProduct("1", "Mango", 450), Quantity: 2},
	}

	order := store.PlaceOrder(cartItems, "2024-01-01", models.PaymentCard, "")

	// 下单后再改购物车条目，不影响已生成的订单
	cartItems[0].Quantity = 99
	cartItems[0].Product.PricePerUnit = 1

	got, ok := store.GetOrderByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, 2*450.0, got.Total)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, 450.0, got.Items[0].PricePerUnit)
}

func TestOrderStore_DistinctTimestampsDistinctIDs(t *testing.T) {
	store := NewOrderStore(nil)
	base := time.Now()
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}
	items := []models.CartItem{{Product: testProduct("1", "Mango", 450), Quantity: 1}}

	first := store.PlaceOrder(items, "2024-01-01", models.PaymentUPI, "")
	second := store.PlaceOrder(items, "2024-01-02", models.PaymentUPI, "")

	assert.NotEqual(t, first.ID, second.ID)

	// 历史按最新在前排列
	orders := store.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrderStore_GetOrderByIDNotFound(t *testing.T) {
	store := NewOrderStore(nil)

	_, ok := store.GetOrderByID("ORD0")

	assert.False(t, ok)
}

func TestOrderStore_EmptyCartOrder(t *testing.T) {
	store := NewOrderStore(nil)

	order := store.PlaceOrder(nil, "2024-01-01", models.PaymentCash, "urgent")

	assert.Equal(t, 0.0, order.Total)
	assert.Empty(t, order.Items)
	assert.Equal(t, "urgent", order.Notes)
}

func TestOrderStore_PersistsAndReloads(t *testing.T) {
	blobs := newMemoryBlobStore()
	store := NewOrderStore(blobs)
	items := []models.CartItem{{Product: testProduct("1", "Mango", 450), Quantity: 2}}

	order := store.PlaceOrder(items, "2024-01-01", models.PaymentUPI, "")

	require.Eventually(t, func() bool {
		return blobs.get(OrdersStorageKey) != nil
	}, time.Second, 10*time.Millisecond)

	reloaded := NewOrderStore(blobs)
	got, ok := reloaded.GetOrderByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, order.Total, got.Total)
}

func TestOrderStore_MalformedBlobTreatedAsEmpty(t *testing.T) {
	blobs := newMemoryBlobStore()
	blobs.set(OrdersStorageKey, []byte("[[["))

	store := NewOrderStore(blobs)

	assert.Empty(t, store.Orders())
}
