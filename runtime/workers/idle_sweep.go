package workers

import (
	"auction-lab/contract"
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

var _ contract.Worker = (*IdleSweeper)(nil)

// IdleSweeper periodically reclaims rooms nobody touched for the idle
// threshold. Rooms with a running auction are never evicted; the registry
// enforces that plus full live feed teardown.
type IdleSweeper struct {
	log      *slog.Logger
	clock    clockwork.Clock
	rooms    contract.IRooms
	interval time.Duration
}

func NewIdleSweeper(log *slog.Logger, clock clockwork.Clock, rooms contract.IRooms, interval time.Duration) *IdleSweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &IdleSweeper{log: log, clock: clock, rooms: rooms, interval: interval}
}

func (w *IdleSweeper) Run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping idle sweeper")
			return nil
		case <-ticker.Chan():
			if evicted := w.rooms.Sweep(w.clock.Now()); evicted > 0 {
				w.log.Info("idle sweep done", "evicted", evicted, "remaining", w.rooms.Len())
			}
		}
	}
}
