package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRoom_StartAuction_ResetsState(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	room := NewRoom("demo", "@seller", now)

	room.StartAuction(now, time.Minute, "round one")
	room.ApplyGift(now, "alice", "", 40, 3)

	// Restarting clears the ledger and rearms the ended notification.
	later := now.Add(10 * time.Second)
	room.StartAuction(later, time.Minute, "round two")

	snap := room.Snapshot(later, 3)
	req.Equal(int64(0), snap.Total)
	req.Empty(snap.Top)
	req.Equal("round two", snap.Title)
	req.Equal(later.Add(time.Minute), snap.EndsAt)
	req.True(snap.Running)
}

func TestRoom_ApplyGift(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should credit while the window is open", func(t *testing.T) {
		req := require.New(t)
		room := NewRoom("demo", "@seller", now)
		room.StartAuction(now, time.Minute, "")

		total, top, applied := room.ApplyGift(now.Add(time.Second), "alice", "a.png", 50, 3)

		req.True(applied)
		req.Equal(int64(50), total)
		req.Len(top, 1)
		req.Equal("alice", top[0].User)
	})

	t.Run("should drop gifts outside the window", func(t *testing.T) {
		req := require.New(t)
		room := NewRoom("demo", "@seller", now)
		room.StartAuction(now, 30*time.Second, "")

		_, _, applied := room.ApplyGift(now.Add(31*time.Second), "alice", "", 50, 3)

		req.False(applied)
		req.Equal(int64(0), room.Snapshot(now, 3).Total)
	})

	t.Run("should drop gifts before any start", func(t *testing.T) {
		req := require.New(t)
		room := NewRoom("demo", "@seller", now)

		_, _, applied := room.ApplyGift(now, "alice", "", 50, 3)

		req.False(applied)
	})
}

func TestRoom_SwitchAccount(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	room := NewRoom("demo", "@seller", now)
	room.StartAuction(now, time.Minute, "lamp")
	room.ApplyGift(now, "alice", "", 50, 3)

	room.SwitchAccount("@other", now.Add(5*time.Second))

	// New source, fresh ledger, same countdown.
	req.Equal("@other", room.TargetAccount())
	snap := room.Snapshot(now.Add(5*time.Second), 3)
	req.Equal(int64(0), snap.Total)
	req.Equal(now.Add(time.Minute), snap.EndsAt)
	req.True(snap.Running)
}

func TestRoom_ConsumeEndedTransition(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	room := NewRoom("demo", "@seller", now)
	room.StartAuction(now, 10*time.Second, "")

	// Still running: nothing to consume.
	req.False(room.ConsumeEndedTransition(now.Add(9 * time.Second)))

	// First tick past the end wins, every later tick is silent.
	req.True(room.ConsumeEndedTransition(now.Add(11 * time.Second)))
	req.False(room.ConsumeEndedTransition(now.Add(12 * time.Second)))
	req.False(room.ConsumeEndedTransition(now.Add(time.Hour)))

	// A new window rearms the transition.
	restart := now.Add(2 * time.Hour)
	room.StartAuction(restart, 5*time.Second, "")
	req.True(room.ConsumeEndedTransition(restart.Add(6 * time.Second)))
}

func TestRoom_Evictable(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	threshold := 10 * time.Minute
	room := NewRoom("demo", "@seller", now)

	req.False(room.Evictable(now.Add(threshold), threshold))
	req.True(room.Evictable(now.Add(threshold+time.Second), threshold))

	// A running auction pins the room regardless of idleness.
	room.StartAuction(now, time.Hour, "")
	req.False(room.Evictable(now.Add(threshold+time.Second), threshold))

	// Once the window closes the idle clock applies again.
	afterEnd := now.Add(time.Hour + threshold + time.Second)
	req.True(room.Evictable(afterEnd, threshold))
}

func TestRoom_Status(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	room := NewRoom("demo", "@seller", now)
	room.StartAuction(now, time.Minute, "")
	room.ApplyGift(now, "alice", "", 10, 3)
	room.ApplyGift(now, "bob", "", 20, 3)
	room.ApplyGift(now, "carol", "", 30, 3)
	room.ApplyGift(now, "dave", "", 40, 3)

	status := room.Status(now, 3)

	req.Equal("demo", status.RoomID)
	req.Equal("@seller", status.Account)
	req.True(status.Running)
	req.Equal(4, status.Donors)
	req.Equal(3, status.TopSize)
}
