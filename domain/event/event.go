package event

import (
	"auction-lab/domain"
	"time"
)

type DomainEvent interface {
	RoomID() string
}

// RankingUpdated is the incremental message emitted after every ledger
// mutation: the aggregate total plus the refreshed top-N.
type RankingUpdated struct {
	Room  string
	Total int64
	Top   []domain.Contributor
	At    time.Time
}

func (e RankingUpdated) RoomID() string { return e.Room }

// AuctionState is the full-state message: sent on subscribe, on every
// window (re)start, and exactly once when a window ends (Final set).
type AuctionState struct {
	Room    string
	Title   string
	EndsAt  time.Time
	Running bool
	Total   int64
	Top     []domain.Contributor
	Final   bool
	At      time.Time
}

func (e AuctionState) RoomID() string { return e.Room }
