package projection

import (
	"auction-lab/contract"
	"auction-lab/domain/event"
	"context"
	"sync"
)

var _ contract.EventSink = (*Board)(nil)

// Board is a permanent sink projecting the event stream into the latest
// known state per room. Read paths (debug surface, late queries) hit the
// projection instead of locking rooms.
type Board struct {
	mu     sync.RWMutex
	states map[string]event.AuctionState
}

func NewBoard() *Board {
	return &Board{states: make(map[string]event.AuctionState)}
}

func (b *Board) Consume(ctx context.Context, e event.DomainEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch evt := e.(type) {
	case event.AuctionState:
		b.states[evt.Room] = evt
	case event.RankingUpdated:
		state := b.states[evt.Room]
		state.Room = evt.Room
		state.Total = evt.Total
		state.Top = evt.Top
		state.At = evt.At
		b.states[evt.Room] = state
	}
	return nil
}

// Latest returns the last projected state for a room.
func (b *Board) Latest(roomID string) (event.AuctionState, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	state, ok := b.states[roomID]
	return state, ok
}
