package workers

import (
	"auction-lab/contract"
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

var _ contract.Worker = (*ExpirySweeper)(nil)

// GrantExpirer is the slice of the entitlement service the sweeper needs.
type GrantExpirer interface {
	ExpireOverdue(now time.Time) (int, error)
}

// ExpirySweeper walks all grants on its own schedule and persists the
// active -> expired transition for any grant past its expiry, so expiry
// does not depend on someone calling verify.
type ExpirySweeper struct {
	log      *slog.Logger
	clock    clockwork.Clock
	grants   GrantExpirer
	interval time.Duration
}

func NewExpirySweeper(log *slog.Logger, clock clockwork.Clock, grants GrantExpirer, interval time.Duration) *ExpirySweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ExpirySweeper{log: log, clock: clock, grants: grants, interval: interval}
}

func (w *ExpirySweeper) Run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping expiry sweeper")
			return nil
		case <-ticker.Chan():
			expired, err := w.grants.ExpireOverdue(w.clock.Now())
			if err != nil {
				// Storage hiccups are transient; next sweep retries.
				w.log.Warn("expiry sweep failed", "error", err)
				continue
			}
			if expired > 0 {
				w.log.Info("expiry sweep done", "expired", expired)
			}
		}
	}
}
