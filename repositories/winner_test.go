package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWinnerRepository_AppendRecent(t *testing.T) {
	req := require.New(t)
	repo := NewWinnerRepository(openTestDB(t), testLogger())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	records, err := repo.Recent(10)
	req.NoError(err)
	req.Empty(records)

	req.NoError(repo.Append(WinnerRecord{Room: "demo", Title: "lamp", EndedAt: base, User: "Alice", Total: 50, TotalRaised: 100}))
	req.NoError(repo.Append(WinnerRecord{Room: "demo", Title: "vase", EndedAt: base.Add(time.Hour), User: "Bob", Total: 80, TotalRaised: 90}))
	req.NoError(repo.Append(WinnerRecord{Room: "other", Title: "rug", EndedAt: base.Add(2 * time.Hour), User: "Carol", Total: 30, TotalRaised: 30}))

	// Most recent window first.
	records, err = repo.Recent(10)
	req.NoError(err)
	req.Len(records, 3)
	req.Equal("Carol", records[0].User)
	req.Equal("Bob", records[1].User)
	req.Equal("Alice", records[2].User)

	// The limit truncates the scan.
	records, err = repo.Recent(2)
	req.NoError(err)
	req.Len(records, 2)
	req.Equal("Carol", records[0].User)
}
