// Package runtime wires rooms, live feed adapters, observers and the
// periodic workers together. It orchestrates the system without holding
// business logic or domain rules.
package runtime

import (
	"auction-lab/contract"
	"auction-lab/domain"
	"auction-lab/domain/event"
	"auction-lab/errors"
	"auction-lab/livefeed"
	"auction-lab/runtime/workers"
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

var _ contract.IOrchestrator = (*Orchestrator)(nil)

type Orchestrator struct {
	log        *slog.Logger
	clock      clockwork.Clock
	supervisor contract.ISupervisor
	registry   *Registry
	rooms      *Rooms

	events         chan event.DomainEvent
	permanentSinks []contract.EventSink

	topN              int
	sinkTimeout       time.Duration
	watchdogInterval  time.Duration
	idleSweepInterval time.Duration
}

func NewOrchestrator(
	log *slog.Logger,
	clock clockwork.Clock,
	supervisor contract.ISupervisor,
	registry *Registry,
	topN, bufferSize int,
	sinkTimeout, watchdogInterval, idleSweepInterval time.Duration,
) *Orchestrator {
	return &Orchestrator{
		log:               log,
		clock:             clock,
		supervisor:        supervisor,
		registry:          registry,
		events:            make(chan event.DomainEvent, bufferSize),
		topN:              topN,
		sinkTimeout:       sinkTimeout,
		watchdogInterval:  watchdogInterval,
		idleSweepInterval: idleSweepInterval,
	}
}

// SetRooms attaches the room registry. The registry needs the adapter
// factory, which publishes through this orchestrator, so the two are
// tied together after construction.
func (o *Orchestrator) SetRooms(rooms *Rooms) {
	o.rooms = rooms
}

// AddSinks registers permanent sinks receiving every domain event,
// independent of room subscriptions (projections, winner log).
func (o *Orchestrator) AddSinks(sinks ...contract.EventSink) {
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Publish hands an event to the fanout pipeline without ever blocking a
// feed callback. A full pipeline drops the event; rankings are recomputed
// on the next mutation anyway.
func (o *Orchestrator) Publish(e event.DomainEvent) {
	select {
	case o.events <- e:
	default:
		o.log.Warn("event pipeline full, dropping event", "room", e.RoomID())
	}
}

// NewAdapterFactory builds the per-room live feed adapter constructor the
// room registry uses. Kept here so the adapter publishes through the
// orchestrator's pipeline.
func (o *Orchestrator) NewAdapterFactory(source contract.FeedSource, reconnectDelay, switchDelay time.Duration) func(room *domain.Room) *livefeed.Adapter {
	return func(room *domain.Room) *livefeed.Adapter {
		return livefeed.NewAdapter(o.log, o.clock, source, room, o.topN, reconnectDelay, switchDelay, o.Publish)
	}
}

// EnsureRoom creates the room on first reference and touches its activity.
func (o *Orchestrator) EnsureRoom(_ context.Context, roomID string) (*domain.Room, error) {
	if roomID == "" {
		return nil, errors.ErrRoomNotFound
	}
	room, _ := o.rooms.GetOrCreate(roomID)
	return room, nil
}

// StartAuction (re)opens a room's countdown window, clearing prior
// contributor entries, and pushes the new full state to observers.
func (o *Orchestrator) StartAuction(roomID string, durationSec int, title string) (domain.RoomSnapshot, error) {
	if durationSec <= 0 {
		return domain.RoomSnapshot{}, errors.ErrInvalidDuration
	}
	room, _ := o.rooms.GetOrCreate(roomID)
	now := o.clock.Now()
	room.StartAuction(now, time.Duration(durationSec)*time.Second, title)

	snapshot := room.Snapshot(now, o.topN)
	o.Publish(stateEvent(snapshot, now, false))
	o.log.Info("auction started", "room", roomID, "duration_sec", durationSec)
	return snapshot, nil
}

// AdjustAuction adds or removes time by restarting the window at
// currentRemaining + delta. Start semantics apply: the ledger resets.
func (o *Orchestrator) AdjustAuction(roomID string, deltaSec int) (domain.RoomSnapshot, error) {
	room, _, ok := o.rooms.Get(roomID)
	if !ok {
		return domain.RoomSnapshot{}, errors.ErrRoomNotFound
	}
	remaining := int(room.Remaining(o.clock.Now()) / time.Second)
	newDuration := remaining + deltaSec
	if newDuration < 1 {
		newDuration = 1
	}
	return o.StartAuction(roomID, newDuration, "")
}

// SwitchAccount repoints a room's live feed at another account. The
// caller's context deliberately stays out of it: the ~1s reconnect must
// outlive the administrative request that asked for it.
func (o *Orchestrator) SwitchAccount(_ context.Context, roomID, account string) error {
	if account == "" {
		return errors.ErrMissingAccount
	}
	_, adapter := o.rooms.GetOrCreate(roomID)
	adapter.SwitchAccount(account)
	return nil
}

// SimulateGift injects a synthetic contribution (debug surface). Outside
// the window it is a no-op reported as such, mirroring real gifts.
func (o *Orchestrator) SimulateGift(roomID, user, avatar string, value int64) ([]domain.Contributor, error) {
	room, _ := o.rooms.GetOrCreate(roomID)
	now := o.clock.Now()
	if !room.Running(now) {
		return nil, errors.ErrAuctionEnded
	}
	total, top, applied := room.ApplyGift(now, user, avatar, value, o.topN)
	if !applied {
		return nil, errors.ErrInvalidValue
	}
	o.Publish(event.RankingUpdated{Room: roomID, Total: total, Top: top, At: now})
	return top, nil
}

func (o *Orchestrator) Snapshot(roomID string) (domain.RoomSnapshot, error) {
	room, _ := o.rooms.GetOrCreate(roomID)
	return room.Snapshot(o.clock.Now(), o.topN), nil
}

func (o *Orchestrator) Status(roomID string) (domain.RoomStatus, error) {
	room, _ := o.rooms.GetOrCreate(roomID)
	return room.Status(o.clock.Now(), o.topN), nil
}

// Subscribe attaches an observer to a room and immediately delivers the
// full current state, so late joiners render without waiting for the next
// mutation.
func (o *Orchestrator) Subscribe(ctx context.Context, observerID, roomID string, sink contract.EventSink) error {
	room, _ := o.rooms.GetOrCreate(roomID)
	o.registry.Subscribe(observerID, roomID, sink)
	now := o.clock.Now()
	return sink.Consume(ctx, stateEvent(room.Snapshot(now, o.topN), now, false))
}

func (o *Orchestrator) Unsubscribe(observerID, roomID string) {
	o.registry.Unsubscribe(observerID, roomID)
}

// Start registers the pipeline workers with the supervisor and runs it.
// The supervisor blocks until shutdown, so it runs on its own goroutine;
// Stop cancels it.
func (o *Orchestrator) Start(ctx context.Context) error {
	fanout := workers.NewEventFanout(o.log, o.registry, o.events, o.sinkTimeout).Add(o.permanentSinks)
	watchdog := workers.NewAuctionWatchdog(o.log, o.clock, o.rooms, o.watchdogInterval, o.topN, o.Publish)
	sweeper := workers.NewIdleSweeper(o.log, o.clock, o.rooms, o.idleSweepInterval)

	o.supervisor.Add(fanout, watchdog, sweeper)

	o.log.Info("starting orchestrator and all supervised workers")
	go o.supervisor.Run(ctx)
	return nil
}

// Stop cancels the supervised workers and waits for none of them; badger
// and sinks flush in their own owners' shutdown paths.
func (o *Orchestrator) Stop() {
	o.log.Info("requesting orchestrator shutdown")
	o.supervisor.Stop()
}

// stateEvent converts a room snapshot to the full-state push message.
func stateEvent(s domain.RoomSnapshot, at time.Time, final bool) event.AuctionState {
	return event.AuctionState{
		Room:    s.RoomID,
		Title:   s.Title,
		EndsAt:  s.EndsAt,
		Running: s.Running,
		Total:   s.Total,
		Top:     s.Top,
		Final:   final,
		At:      at,
	}
}
