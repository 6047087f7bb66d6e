package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStore_AddToCartAccumulates(t *testing.T) {
	cart := NewCartStore(nil)
	mango := testProduct("1", "Royal Alphonso Mango", 450)

	cart.AddToCart(mango, 2)
	cart.AddToCart(mango, 3)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, cart.GetItemCount())
	assert.Equal(t, 5*450.0, cart.GetTotal())
}

func TestCartStore_AddToCartDistinctProducts(t *testing.T) {
	cart := NewCartStore(nil)
	cart.AddToCart(testProduct("1", "Mango", 450), 2)
	cart.AddToCart(testProduct("2", "Banana", 60), 4)

	assert.Len(t, cart.Items(), 2)
	assert.Equal(t, 6, cart.GetItemCount())
	assert.Equal(t, 2*450.0+4*60.0, cart.GetTotal())
}

func TestCartStore_UpdateQuantitySets(t *testing.T) {
	cart := NewCartStore(nil)
	cart.AddToCart(testProduct("1", "Mango", 450), 2)

	cart.UpdateQuantity("1", 7)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestCartStore_UpdateQuantityZeroRemoves(t *testing.T) {
	cart := NewCartStore(nil)
	cart.AddToCart(testProduct("1", "Mango", 450), 5)

	cart.UpdateQuantity("1", 0)

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0.0, cart.GetTotal())
}

func TestCartStore_UpdateQuantityNegativeRemoves(t *testing.T) {
	cart := NewCartStore(nil)
	cart.AddToCart(testProduct("1", "Mango", 450), 5)

	cart.UpdateQuantity("1", -3)

	assert.Empty(t, cart.Items())
}

func TestCartStore_RemoveFromCartAbsentIsNoOp(t *testing.T) {
	cart := NewCartStore(nil)
	cart.AddToCart(testProduct("1", "Mango", 450), 2)

	cart.RemoveFromCart("nope")

	assert.Len(t, cart.Items(), 1)
}

func TestCartStore_ClearCart(t *testing.T) {
	cart := NewCartStore(nil)
	cart.AddToCart(testProduct("1", "Mango", 450), 2)
	cart.AddToCart(testProduct("2", "Banana", 60), 1)

	cart.ClearCart()

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.GetItemCount())
}

func TestCartStore_GetTotalRecomputedAfterMutations(t *testing.T) {
	cart := NewCartStore(nil)
	mango := testProduct("1", "Mango", 450)

	cart.AddToCart(mango, 2)
	cart.AddToCart(mango, 3)
	assert.Equal(t, 5*450.0, cart.GetTotal())
	// 重复调用结果不变
	assert.Equal(t, 5*450.0, cart.GetTotal())

	cart.UpdateQuantity("1", 0)
	assert.Equal(t, 0.0, cart.GetTotal())
}

func TestCartStore_PersistsAndReloads(t *testing.T) {
	blobs := newMemoryBlobStore()

	cart := NewCartStore(blobs)
	cart.AddToCart(testProduct("1", "Mango", 450), 3)

	// 落盘是异步的
	require.Eventually(t, func() bool {
		return blobs.get(CartStorageKey) != nil
	}, time.Second, 10*time.Millisecond)

	reloaded := NewCartStore(blobs)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartStore_MalformedBlobTreatedAsEmpty(t *testing.T) {
	blobs := newMemoryBlobStore()
	blobs.set(CartStorageKey, []byte("{not json"))

	cart := NewCartStore(blobs)

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0.0, cart.GetTotal())
}
