package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

type countingExpirer struct {
	calls atomic.Int32
}

func (c *countingExpirer) ExpireOverdue(now time.Time) (int, error) {
	c.calls.Add(1)
	return 1, nil
}

func TestExpirySweeper_Run(t *testing.T) {
	req := require.New(t)
	clock := clockwork.NewFakeClock()
	expirer := &countingExpirer{}
	sweeper := NewExpirySweeper(discardLogger(), clock, expirer, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.Run(ctx)

	// Let the ticker arm before advancing the clock past one interval.
	clock.BlockUntil(1)
	clock.Advance(time.Hour)

	req.Eventually(func() bool { return expirer.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
}
