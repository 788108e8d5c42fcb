package workers

import (
	"auction-lab/contract"
	"auction-lab/domain"
	"auction-lab/domain/event"
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

var _ contract.Worker = (*AuctionWatchdog)(nil)

// AuctionWatchdog ticks once a second over every room and publishes the
// final full state when a countdown window crosses into ended. Each
// window gets at most one terminal publish; the room tracks which end
// time was already notified.
type AuctionWatchdog struct {
	log      *slog.Logger
	clock    clockwork.Clock
	rooms    contract.IRooms
	interval time.Duration
	topN     int
	publish  func(e event.DomainEvent)
}

func NewAuctionWatchdog(
	log *slog.Logger,
	clock clockwork.Clock,
	rooms contract.IRooms,
	interval time.Duration,
	topN int,
	publish func(e event.DomainEvent),
) *AuctionWatchdog {
	if interval <= 0 {
		interval = time.Second
	}
	return &AuctionWatchdog{log: log, clock: clock, rooms: rooms, interval: interval, topN: topN, publish: publish}
}

func (w *AuctionWatchdog) Run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping auction watchdog")
			return nil
		case <-ticker.Chan():
			w.Tick()
		}
	}
}

// Tick runs one watchdog pass, usable directly from tests.
func (w *AuctionWatchdog) Tick() {
	now := w.clock.Now()
	w.rooms.ForEach(func(room *domain.Room) {
		if !room.ConsumeEndedTransition(now) {
			return
		}
		s := room.Snapshot(now, w.topN)
		w.publish(event.AuctionState{
			Room:    s.RoomID,
			Title:   s.Title,
			EndsAt:  s.EndsAt,
			Running: false,
			Total:   s.Total,
			Top:     s.Top,
			Final:   true,
			At:      now,
		})
		w.log.Info("auction ended", "room", room.ID, "total", s.Total)
	})
}
