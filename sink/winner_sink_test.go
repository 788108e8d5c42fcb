package sink

import (
	"auction-lab/domain"
	"auction-lab/domain/event"
	"auction-lab/repositories"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T) (*WinnerSink, *repositories.WinnerRepository) {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repositories.NewWinnerRepository(db, log)
	return NewWinnerSink(repo, log), repo
}

func TestWinnerSink_Consume(t *testing.T) {
	req := require.New(t)
	sink, repo := newTestSink(t)
	ctx := context.Background()
	endsAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	final := event.AuctionState{
		Room:   "demo",
		Title:  "lamp",
		EndsAt: endsAt,
		Total:  100,
		Top: []domain.Contributor{
			{User: "Alice", Total: 60, Avatar: "a.png"},
			{User: "Bob", Total: 40},
		},
		Final: true,
		At:    endsAt,
	}

	req.NoError(sink.Consume(ctx, final))

	records, err := repo.Recent(10)
	req.NoError(err)
	req.Len(records, 1)
	req.Equal("demo", records[0].Room)
	req.Equal("lamp", records[0].Title)
	req.Equal("Alice", records[0].User)
	req.Equal("a.png", records[0].Avatar)
	req.Equal(int64(60), records[0].Total)
	req.Equal(int64(100), records[0].TotalRaised)
}

func TestWinnerSink_Consume_Ignored(t *testing.T) {
	req := require.New(t)
	sink, repo := newTestSink(t)
	ctx := context.Background()

	// Non-final states never reach the log.
	req.NoError(sink.Consume(ctx, event.AuctionState{
		Room: "demo",
		Top:  []domain.Contributor{{User: "Alice", Total: 10}},
	}))

	// Neither do windows that closed without a single contribution.
	req.NoError(sink.Consume(ctx, event.AuctionState{Room: "demo", Final: true}))

	// Incremental rankings are not the sink's business.
	req.NoError(sink.Consume(ctx, event.RankingUpdated{Room: "demo", Total: 10}))

	records, err := repo.Recent(10)
	req.NoError(err)
	req.Empty(records)
}
