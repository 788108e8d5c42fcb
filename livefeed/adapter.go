package livefeed

import (
	"auction-lab/contract"
	"auction-lab/domain"
	"auction-lab/domain/event"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Compile-time check: the adapter is the handler its connections call back into.
var _ contract.FeedHandler = (*generationHandler)(nil)

const (
	// DefaultReconnectDelay is the countdown after a drop or failed dial.
	DefaultReconnectDelay = 30 * time.Second
	// DefaultSwitchDelay is the near-immediate reconnect after an
	// administrative account switch.
	DefaultSwitchDelay = 1 * time.Second
)

// Adapter owns at most one live subscription for one room and the single
// pending reconnect countdown. Connection errors are logged and retried
// forever; nothing here is fatal to the room or its siblings.
//
// Dials and countdowns run on the adapter's own context, which spans the
// room's lifetime. Administrative calls arrive on request-scoped contexts
// that die as soon as the handler returns, so they must never leak into a
// scheduled dial; Close is the only thing that stops the retry chain.
type Adapter struct {
	log     *slog.Logger
	clock   clockwork.Clock
	source  contract.FeedSource
	room    *domain.Room
	publish func(e event.DomainEvent)
	topN    int

	ctx    context.Context
	cancel context.CancelFunc

	reconnectDelay time.Duration
	switchDelay    time.Duration

	mu      sync.Mutex
	conn    contract.FeedConnection
	pending clockwork.Timer
	gen     uint64 // bumped on every (re)connect and switch; stale callbacks are dropped
	closed  bool
}

func NewAdapter(
	log *slog.Logger,
	clock clockwork.Clock,
	source contract.FeedSource,
	room *domain.Room,
	topN int,
	reconnectDelay, switchDelay time.Duration,
	publish func(e event.DomainEvent),
) *Adapter {
	if reconnectDelay <= 0 {
		reconnectDelay = DefaultReconnectDelay
	}
	if switchDelay <= 0 {
		switchDelay = DefaultSwitchDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Adapter{
		log:            log.With("room", room.ID),
		clock:          clock,
		source:         source,
		room:           room,
		publish:        publish,
		topN:           topN,
		ctx:            ctx,
		cancel:         cancel,
		reconnectDelay: reconnectDelay,
		switchDelay:    switchDelay,
	}
}

// Connect establishes a fresh subscription to the room's target account,
// fully detaching any prior one first. On success any pending reconnect
// countdown is cancelled; on failure one is scheduled.
func (a *Adapter) Connect() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.gen++
	gen := a.gen
	if a.conn != nil {
		_ = a.conn.Close()
		a.conn = nil
	}
	a.mu.Unlock()

	account := a.room.TargetAccount()
	conn, err := a.source.Connect(a.ctx, account, &generationHandler{adapter: a, gen: gen})

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed || gen != a.gen {
		// A newer connect or switch superseded this attempt.
		if conn != nil {
			_ = conn.Close()
		}
		return
	}
	if err != nil {
		a.log.Warn("live feed connect failed", "account", account, "error", err)
		a.scheduleReconnectLocked(a.reconnectDelay)
		return
	}
	a.conn = conn
	a.cancelPendingLocked()
	a.log.Info("live feed connected", "account", account)
}

// SwitchAccount repoints the room at another account: ledger and ranking
// are cleared, the window's end time survives, and a near-immediate
// reconnect replaces whatever countdown was pending.
func (a *Adapter) SwitchAccount(account string) {
	now := a.clock.Now()
	a.room.SwitchAccount(account, now)

	a.mu.Lock()
	a.gen++ // orphan in-flight callbacks from the old account
	if a.conn != nil {
		_ = a.conn.Close()
		a.conn = nil
	}
	a.cancelPendingLocked()
	a.scheduleReconnectLocked(a.switchDelay)
	a.mu.Unlock()

	a.publish(event.RankingUpdated{Room: a.room.ID, Total: 0, Top: nil, At: now})
	a.log.Info("target account switched", "account", account)
}

// Close tears the adapter down for room eviction: the pending countdown is
// stopped and the connection detached. The adapter never reconnects after.
func (a *Adapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	a.cancel()
	a.gen++
	a.cancelPendingLocked()
	if a.conn != nil {
		_ = a.conn.Close()
		a.conn = nil
	}
}

// PendingReconnect reports whether a reconnect countdown is live.
// At most one exists at any time.
func (a *Adapter) PendingReconnect() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

// Connected reports whether a live subscription is currently attached.
func (a *Adapter) Connected() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.conn != nil
}

// scheduleReconnectLocked arms the reconnect countdown if none is pending.
// Idempotent: a second drop while counting down must not stack a timer.
func (a *Adapter) scheduleReconnectLocked(d time.Duration) {
	if a.pending != nil || a.closed {
		return
	}
	a.log.Info("scheduling live feed reconnect", "in", d)
	a.pending = a.clock.AfterFunc(d, func() {
		a.mu.Lock()
		a.pending = nil
		closed := a.closed
		a.mu.Unlock()
		if closed || a.ctx.Err() != nil {
			return
		}
		a.Connect()
	})
}

func (a *Adapter) cancelPendingLocked() {
	if a.pending != nil {
		a.pending.Stop()
		a.pending = nil
	}
}

// handleGift filters and applies one normalized gift event.
// Out-of-window and open-streak events are dropped; anything applied
// triggers an incremental ranking publish.
func (a *Adapter) handleGift(gen uint64, gift domain.Gift) {
	a.mu.Lock()
	stale := a.closed || gen != a.gen
	a.mu.Unlock()
	if stale {
		return
	}
	if gift.OpenStreak() {
		return
	}
	value := gift.EffectiveValue()
	if value <= 0 {
		return
	}

	now := a.clock.Now()
	total, top, applied := a.room.ApplyGift(now, gift.DisplayName(), gift.Avatar, value, a.topN)
	if !applied {
		return
	}
	a.publish(event.RankingUpdated{Room: a.room.ID, Total: total, Top: top, At: now})
}

func (a *Adapter) handleDisconnected(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed || gen != a.gen {
		return
	}
	a.conn = nil
	a.log.Warn("live feed disconnected")
	a.scheduleReconnectLocked(a.reconnectDelay)
}

// generationHandler pins feed callbacks to the connection generation that
// registered them, so a detached connection can never mutate the ledger.
type generationHandler struct {
	adapter *Adapter
	gen     uint64
}

func (h *generationHandler) OnGift(gift domain.Gift) {
	h.adapter.handleGift(h.gen, gift)
}

func (h *generationHandler) OnDisconnected() {
	h.adapter.handleDisconnected(h.gen)
}
