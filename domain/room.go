package domain

import (
	"sync"
	"time"
)

// RoomSnapshot is the full-state view pushed to observers.
type RoomSnapshot struct {
	RoomID  string
	Title   string
	EndsAt  time.Time
	Running bool
	Total   int64
	Top     []Contributor
}

// RoomStatus is the lightweight operational view of a room.
type RoomStatus struct {
	RoomID  string
	Account string
	Running bool
	EndsAt  time.Time
	Donors  int
	TopSize int
}

// Room is the unit of isolation: one target account, one auction window,
// one donation ledger, one activity timestamp. All access goes through
// its mutex so feed callbacks and administrative operations interleave
// safely; no failure in one room can touch another.
type Room struct {
	ID string

	mu             sync.Mutex
	targetAccount  string
	auction        Auction
	ledger         *Ledger
	lastActivity   time.Time
	notifiedEndsAt time.Time
}

func NewRoom(id, targetAccount string, now time.Time) *Room {
	return &Room{
		ID:            id,
		targetAccount: targetAccount,
		ledger:        NewLedger(),
		lastActivity:  now,
	}
}

// Touch records activity, deferring idle eviction.
func (r *Room) Touch(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastActivity = now
}

func (r *Room) LastActivity() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastActivity
}

func (r *Room) TargetAccount() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.targetAccount
}

// SwitchAccount points the room at another live account. The ledger is
// cleared (new source, new race) but the window's end time survives.
func (r *Room) SwitchAccount(account string, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targetAccount = account
	r.ledger.Reset()
	r.lastActivity = now
}

// StartAuction (re)opens the countdown window and clears prior entries.
// The terminal-notification marker resets so the new window gets its own
// ended publish.
func (r *Room) StartAuction(now time.Time, d time.Duration, title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auction.Start(now, d, title)
	r.ledger.Reset()
	r.notifiedEndsAt = time.Time{}
	r.lastActivity = now
}

func (r *Room) Running(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.auction.Running(now)
}

func (r *Room) Remaining(now time.Time) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.auction.Remaining(now)
}

// ApplyGift credits a contribution if the window is open. It returns the
// refreshed aggregate total and ranking so the caller can publish them
// without re-locking.
func (r *Room) ApplyGift(now time.Time, user, avatar string, value int64, topN int) (total int64, top []Contributor, applied bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.auction.Running(now) {
		return 0, nil, false
	}
	if !r.ledger.Apply(user, avatar, value) {
		return 0, nil, false
	}
	r.lastActivity = now
	return r.ledger.Total(), r.ledger.TopN(topN), true
}

// ConsumeEndedTransition reports, exactly once per window, that the
// auction has ended. The watchdog calls this every tick; only the first
// call after the transition returns true.
func (r *Room) ConsumeEndedTransition(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.auction.Ended(now) {
		return false
	}
	if r.notifiedEndsAt.Equal(r.auction.EndsAt) {
		return false
	}
	r.notifiedEndsAt = r.auction.EndsAt
	return true
}

// Evictable reports whether the room may be reclaimed: idle past the
// threshold and no auction currently running.
func (r *Room) Evictable(now time.Time, idleThreshold time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.auction.Running(now) {
		return false
	}
	return now.Sub(r.lastActivity) > idleThreshold
}

func (r *Room) Snapshot(now time.Time, topN int) RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RoomSnapshot{
		RoomID:  r.ID,
		Title:   r.auction.Title,
		EndsAt:  r.auction.EndsAt,
		Running: r.auction.Running(now),
		Total:   r.ledger.Total(),
		Top:     r.ledger.TopN(topN),
	}
}

func (r *Room) Status(now time.Time, topN int) RoomStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	ranked := len(r.ledger.entries)
	if ranked > topN {
		ranked = topN
	}
	return RoomStatus{
		RoomID:  r.ID,
		Account: r.targetAccount,
		Running: r.auction.Running(now),
		EndsAt:  r.auction.EndsAt,
		Donors:  r.ledger.Size(),
		TopSize: ranked,
	}
}
