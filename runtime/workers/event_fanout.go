package workers

import (
	"auction-lab/contract"
	"auction-lab/domain/event"
	"context"
	"log/slog"
	"time"
)

var _ contract.Worker = (*EventFanout)(nil)

// EventFanout drains the domain event pipeline and broadcasts each event
// to the permanent sinks plus every observer subscribed to the event's
// room. Best-effort fan-out with no delivery, ordering or retry
// guarantees: a slow or failing sink is skipped after its timeout, never
// stalling the other rooms' events.
type EventFanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	events      chan event.DomainEvent
	sinks       []contract.EventSink
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, registry contract.IRegistry, events chan event.DomainEvent, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{log: log, registry: registry, events: events, sinkTimeout: sinkTimeout}
}

// Add registers permanent sinks receiving every event regardless of room.
func (w *EventFanout) Add(sinks []contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout delivers one event to permanent sinks and room observers.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	targets := append([]contract.EventSink{}, w.sinks...)
	targets = append(targets, w.registry.GetSinksForRoom(evt.RoomID())...)

	for _, sink := range targets {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("sink rejected event", "room", evt.RoomID(), "error", err)
		}
		cancel()
	}
}
