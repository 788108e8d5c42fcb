package projection

import (
	"auction-lab/domain"
	"auction-lab/domain/event"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBoard_Consume(t *testing.T) {
	req := require.New(t)
	board := NewBoard()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, ok := board.Latest("demo")
	req.False(ok)

	// Full state primes the projection.
	req.NoError(board.Consume(ctx, event.AuctionState{
		Room:    "demo",
		Title:   "lamp",
		EndsAt:  now.Add(time.Minute),
		Running: true,
		At:      now,
	}))

	state, ok := board.Latest("demo")
	req.True(ok)
	req.Equal("lamp", state.Title)
	req.True(state.Running)

	// Incremental rankings merge into the known state.
	req.NoError(board.Consume(ctx, event.RankingUpdated{
		Room:  "demo",
		Total: 50,
		Top:   []domain.Contributor{{User: "Alice", Total: 50}},
		At:    now.Add(10 * time.Second),
	}))

	state, ok = board.Latest("demo")
	req.True(ok)
	req.Equal("lamp", state.Title)
	req.Equal(int64(50), state.Total)
	req.Len(state.Top, 1)
	req.Equal(now.Add(10*time.Second), state.At)

	// Rooms project independently.
	req.NoError(board.Consume(ctx, event.RankingUpdated{Room: "other", Total: 7, At: now}))
	other, ok := board.Latest("other")
	req.True(ok)
	req.Equal(int64(7), other.Total)
	state, _ = board.Latest("demo")
	req.Equal(int64(50), state.Total)

	// The terminal state replaces the running one.
	req.NoError(board.Consume(ctx, event.AuctionState{
		Room:  "demo",
		Title: "lamp",
		Total: 50,
		Final: true,
		At:    now.Add(time.Minute),
	}))
	state, _ = board.Latest("demo")
	req.True(state.Final)
	req.False(state.Running)
}
