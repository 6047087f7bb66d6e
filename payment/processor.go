package payment

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fruit-order-service/models"
	"fruit-order-service/stores"
)

type State string

const (
	StateProcessing State = "processing"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
	StateCancelled  State = "cancelled"
)

// SessionInfo 会话状态快照，返回给表现层
type SessionInfo struct {
	ID      string `json:"id"`
	State   State  `json:"state"`
	OrderID string `json:"orderId,omitempty"`
}

type session struct {
	id           string
	state        State
	orderID      string
	deliveryDate string
	notes        string
	method       models.PaymentMethod
	timer        *time.Timer
}

// Events 支付结果事件钩子，publisher 缺席时为 nil
type Events interface {
	OrderPlaced(order models.Order)
	PaymentFailed(sessionID string)
}

// Processor 模拟支付：入场时挂一个延迟动作，到点抽一次随机结果。
// 成功路径先下单再清空购物车，失败（或购物车已空）进入 failed 态。
type Processor struct {
	cart        *stores.CartStore
	orders      *stores.OrderStore
	delay       time.Duration
	successRate float64
	randFloat   func() float64
	events      Events

	mu       sync.Mutex
	sessions map[string]*session
}

func NewProcessor(cart *stores.CartStore, orders *stores.OrderStore, delay time.Duration, successRate float64, events Events) *Processor {
	return &Processor{
		cart:        cart,
		orders:      orders,
		delay:       delay,
		successRate: successRate,
		randFloat:   rand.Float64,
		events:      events,
		sessions:    make(map[string]*session),
	}
}

// SetRandSource 注入可复现的随机源，测试用
func (p *Processor) SetRandSource(r *rand.Rand) {
	p.randFloat = r.Float64
}

func (p *Processor) Start(deliveryDate string, method models.PaymentMethod, notes string) SessionInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	sess := &session{
		id:           uuid.New().String(),
		state:        StateProcessing,
		deliveryDate: deliveryDate,
		notes:        notes,
		method:       method,
	}
	sess.timer = time.AfterFunc(p.delay, func() { p.settle(sess.id) })
	p.sessions[sess.id] = sess
	return p.infoLocked(sess)
}

// settle 首次到点：按成功率抽签
func (p *Processor) settle(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sess, ok := p.sessions[sessionID]
	if !ok || sess.state != StateProcessing {
		return
	}

	items := p.cart.Items()
	success := p.randFloat() < p.successRate

	if success && len(items) > 0 {
		p.completeLocked(sess, items)
		return
	}

	sess.state = StateFailed
	log.Info().Str("session", sess.id).Msg("Mock payment failed")
	if p.events != nil {
		p.events.PaymentFailed(sess.id)
	}
}

// Retry 重新挂同样的延迟动作。注意：重试到点后不再抽签，
// 而是照搬原有流程直接成功（沿用既有行为，未确认是否有意为之）。
func (p *Processor) Retry(sessionID string) (SessionInfo, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sess, ok := p.sessions[sessionID]
	if !ok || sess.state != StateFailed {
		return SessionInfo{}, false
	}

	sess.state = StateProcessing
	sess.timer = time.AfterFunc(p.delay, func() { p.settleRetry(sess.id) })
	return p.infoLocked(sess), true
}

func (p *Processor) settleRetry(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sess, ok := p.sessions[sessionID]
	if !ok || sess.state != StateProcessing {
		return
	}
	p.completeLocked(sess, p.cart.Items())
}

func (p *Processor) completeLocked(sess *session, items []models.CartItem) {
	order := p.orders.PlaceOrder(items, sess.deliveryDate, sess.method, sess.notes)
	// 下单成功后才清空购物车
	p.cart.ClearCart()

	sess.state = StateSuccess
	sess.orderID = order.ID
	log.Info().Str("session", sess.id).Str("order", order.ID).Msg("Mock payment succeeded")
	if p.events != nil {
		p.events.OrderPlaced(order)
	}
}

// Cancel 宿主页面销毁时必须取消挂起的定时器，避免拿陈旧的购物车状态下单
func (p *Processor) Cancel(sessionID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	sess, ok := p.sessions[sessionID]
	if !ok {
		return false
	}
	if sess.state == StateProcessing {
		sess.timer.Stop()
		sess.state = StateCancelled
	}
	return true
}

func (p *Processor) Get(sessionID string) (SessionInfo, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sess, ok := p.sessions[sessionID]
	if !ok {
		return SessionInfo{}, false
	}
	return p.infoLocked(sess), true
}

// Close 停掉所有未结算的会话
func (p *Processor) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, sess := range p.sessions {
		if sess.state == StateProcessing {
			sess.timer.Stop()
			sess.state = StateCancelled
		}
	}
}

func (p *Processor) infoLocked(sess *session) SessionInfo {
	return SessionInfo{ID: sess.id, State: sess.state, OrderID: sess.orderID}
}
