package repositories

import (
	"auction-lab/domain"
	"auction-lab/errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGrantRepository_PutGet(t *testing.T) {
	req := require.New(t)
	repo := NewGrantRepository(openTestDB(t), testLogger())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	activated := now.Add(time.Hour)
	used := now.Add(2 * time.Hour)
	grant := domain.Grant{
		ID:          "key-abc",
		Kind:        domain.KindKey,
		Status:      domain.GrantActive,
		CreatedAt:   now,
		ExpiresAt:   now.Add(domain.GrantMonth),
		ActivatedAt: &activated,
		LastUsedAt:  &used,
		Uses:        7,
		Notes:       "sold at the spring fair",
	}

	req.NoError(repo.Put(grant))

	got, err := repo.Get("key-abc")
	req.NoError(err)
	req.Equal(grant.ID, got.ID)
	req.Equal(grant.Kind, got.Kind)
	req.Equal(grant.Status, got.Status)
	req.True(grant.CreatedAt.Equal(got.CreatedAt))
	req.True(grant.ExpiresAt.Equal(got.ExpiresAt))
	req.True(activated.Equal(*got.ActivatedAt))
	req.True(used.Equal(*got.LastUsedAt))
	req.Equal(uint64(7), got.Uses)
	req.Equal("sold at the spring fair", got.Notes)
}

func TestGrantRepository_Get_NotFound(t *testing.T) {
	req := require.New(t)
	repo := NewGrantRepository(openTestDB(t), testLogger())

	_, err := repo.Get("missing")

	req.ErrorIs(err, errors.ErrGrantNotFound)
}

func TestGrantRepository_Delete(t *testing.T) {
	req := require.New(t)
	repo := NewGrantRepository(openTestDB(t), testLogger())
	now := time.Now().UTC()
	req.NoError(repo.Put(domain.NewGrant("key-abc", domain.KindKey, now, 1)))

	req.NoError(repo.Delete("key-abc"))

	_, err := repo.Get("key-abc")
	req.ErrorIs(err, errors.ErrGrantNotFound)

	// Deleting twice reports the absence.
	req.ErrorIs(repo.Delete("key-abc"), errors.ErrGrantNotFound)
}

func TestGrantRepository_List(t *testing.T) {
	req := require.New(t)
	repo := NewGrantRepository(openTestDB(t), testLogger())
	now := time.Now().UTC()

	grants, err := repo.List()
	req.NoError(err)
	req.Empty(grants)

	req.NoError(repo.Put(domain.NewGrant("key-a", domain.KindKey, now, 1)))
	req.NoError(repo.Put(domain.NewGrant("key-b", domain.KindKey, now, 2)))
	req.NoError(repo.Put(domain.NewGrant("@seller", domain.KindAccount, now, 3)))

	grants, err = repo.List()
	req.NoError(err)
	req.Len(grants, 3)

	ids := make([]string, 0, len(grants))
	for _, g := range grants {
		ids = append(ids, g.ID)
	}
	req.ElementsMatch([]string{"key-a", "key-b", "@seller"}, ids)
}
