package payment

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruit-order-service/models"
	"fruit-order-service/stores"
)

type recordingEvents struct {
	mu       sync.Mutex
	placed   []string
	failures []string
}

func (r *recordingEvents) OrderPlaced(order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placed = append(r.placed, order.ID)
}

func (r *recordingEvents) PaymentFailed(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, sessionID)
}

func (r *recordingEvents) placedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.placed)
}

func (r *recordingEvents) failureCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failures)
}

func testProduct(id string, price float64) models.Product {
	return models.Product{
		ID:           id,
		Name:         "Mango",
		Category:     models.CategorySeasonal,
		PricePerUnit: price,
		Unit:         models.UnitKg,
	}
}

func newTestProcessor(t *testing.T, draw float64, events Events) (*Processor, *stores.CartStore, *stores.OrderStore) {
	t.Helper()
	cart := stores.NewCartStore(nil)
	orders := stores.NewOrderStore(nil)
	p := NewProcessor(cart, orders, 5*time.Millisecond, 0.9, events)
	p.randFloat = func() float64 { return draw }
	t.Cleanup(p.Close)
	return p, cart, orders
}

func waitForState(t *testing.T, p *Processor, id string, want State) SessionInfo {
	t.Helper()
	var sess SessionInfo
	require.Eventually(t, func() bool {
		var ok bool
		sess, ok = p.Get(id)
		return ok && sess.State == want
	}, time.Second, 5*time.Millisecond)
	return sess
}

func TestProcessor_SuccessPlacesOrderAndClearsCart(t *testing.T) {
	events := &recordingEvents{}
	p, cart, orders := newTestProcessor(t, 0.0, events) // 抽中成功
	cart.AddToCart(testProduct("1", 450), 2)

	sess := p.Start("2024-01-01", models.PaymentUPI, "")

	done := waitForState(t, p, sess.ID, StateSuccess)
	require.NotEmpty(t, done.OrderID)

	order, ok := orders.GetOrderByID(done.OrderID)
	require.True(t, ok)
	assert.Equal(t, 2*450.0, order.Total)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)

	// 下单成功后购物车才清空
	assert.Empty(t, cart.Items())
	assert.Equal(t, 1, events.placedCount())
}

func TestProcessor_FailureKeepsCart(t *testing.T) {
	events := &recordingEvents{}
	p, cart, orders := newTestProcessor(t, 0.99, events) // 抽中失败
	cart.AddToCart(testProduct("1", 450), 2)

	sess := p.Start("2024-01-01", models.PaymentCard, "")

	waitForState(t, p, sess.ID, StateFailed)

	assert.Len(t, cart.Items(), 1)
	assert.Empty(t, orders.Orders())
	assert.Equal(t, 1, events.failureCount())
}

func TestProcessor_EmptyCartFailsEvenOnSuccessDraw(t *testing.T) {
	p, _, orders := newTestProcessor(t, 0.0, nil)

	sess := p.Start("2024-01-01", models.PaymentUPI, "")

	waitForState(t, p, sess.ID, StateFailed)
	assert.Empty(t, orders.Orders())
}

func TestProcessor_RetryAlwaysSucceeds(t *testing.T) {
	// 重试路径不重新抽签，即便随机源仍然给失败值
	p, cart, orders := newTestProcessor(t, 0.99, nil)
	cart.AddToCart(testProduct("1", 450), 3)

	sess := p.Start("2024-01-05", models.PaymentCash, "bulk")
	waitForState(t, p, sess.ID, StateFailed)

	retried, ok := p.Retry(sess.ID)
	require.True(t, ok)
	assert.Equal(t, StateProcessing, retried.State)

	done := waitForState(t, p, sess.ID, StateSuccess)
	order, found := orders.GetOrderByID(done.OrderID)
	require.True(t, found)
	assert.Equal(t, 3*450.0, order.Total)
	assert.Empty(t, cart.Items())
}

func TestProcessor_RetryOnlyFromFailedState(t *testing.T) {
	p, cart, _ := newTestProcessor(t, 0.0, nil)
	cart.AddToCart(testProduct("1", 450), 1)

	sess := p.Start("2024-01-01", models.PaymentUPI, "")
	waitForState(t, p, sess.ID, StateSuccess)

	_, ok := p.Retry(sess.ID)
	assert.False(t, ok)

	_, ok = p.Retry("no-such-session")
	assert.False(t, ok)
}

func TestProcessor_CancelStopsPendingTimer(t *testing.T) {
	cart := stores.NewCartStore(nil)
	orders := stores.NewOrderStore(nil)
	p := NewProcessor(cart, orders, 30*time.Millisecond, 0.9, nil)
	p.randFloat = func() float64 { return 0.0 }
	cart.AddToCart(testProduct("1", 450), 2)

	sess := p.Start("2024-01-01", models.PaymentUPI, "")
	require.True(t, p.Cancel(sess.ID))

	time.Sleep(60 * time.Millisecond)

	got, ok := p.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, StateCancelled, got.State)
	// 取消后不得基于陈旧购物车下单
	assert.Empty(t, orders.Orders())
	assert.Len(t, cart.Items(), 1)
}

func TestProcessor_SeededRandSourceIsReproducible(t *testing.T) {
	run := func() State {
		cart := stores.NewCartStore(nil)
		orders := stores.NewOrderStore(nil)
		p := NewProcessor(cart, orders, 5*time.Millisecond, 0.9, nil)
		p.SetRandSource(rand.New(rand.NewSource(42)))
		defer p.Close()

		cart.AddToCart(testProduct("1", 450), 1)
		sess := p.Start("2024-01-01", models.PaymentUPI, "")

		var final State
		require.Eventually(t, func() bool {
			got, ok := p.Get(sess.ID)
			if !ok || got.State == StateProcessing {
				return false
			}
			final = got.State
			return true
		}, time.Second, 5*time.Millisecond)
		return final
	}

	assert.Equal(t, run(), run())
}

func TestProcessor_GetUnknownSession(t *testing.T) {
	p, _, _ := newTestProcessor(t, 0.0, nil)

	_, ok := p.Get("missing")

	assert.False(t, ok)
}
