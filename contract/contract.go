//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"auction-lab/domain"
	"auction-lab/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

type IRegistry interface {
	GetSinksForRoom(roomID string) []EventSink
	Subscribe(observerID string, roomID string, sink EventSink)
	Unsubscribe(observerID string, roomID string)
}

// FeedHandler receives callbacks from one live subscription.
type FeedHandler interface {
	OnGift(gift domain.Gift)
	OnDisconnected()
}

// FeedSource dials the external live-gifting network for a target account.
// The concrete connector is wired at the edge; the engine never depends on it.
type FeedSource interface {
	Connect(ctx context.Context, account string, handler FeedHandler) (FeedConnection, error)
}

// FeedConnection is one live subscription. Close detaches every listener,
// so callbacks from a closed connection must never reach the ledger.
type FeedConnection interface {
	Close() error
}

// IRooms is the façade the periodic workers need over the room registry.
type IRooms interface {
	ForEach(fn func(room *domain.Room))
	Sweep(now time.Time) int
	Len() int
}

type IOrchestrator interface {
	EnsureRoom(ctx context.Context, roomID string) (*domain.Room, error)
	StartAuction(roomID string, durationSec int, title string) (domain.RoomSnapshot, error)
	AdjustAuction(roomID string, deltaSec int) (domain.RoomSnapshot, error)
	SwitchAccount(ctx context.Context, roomID, account string) error
	SimulateGift(roomID, user, avatar string, value int64) ([]domain.Contributor, error)
	Snapshot(roomID string) (domain.RoomSnapshot, error)
	Status(roomID string) (domain.RoomStatus, error)
	Subscribe(ctx context.Context, observerID, roomID string, sink EventSink) error
	Unsubscribe(observerID, roomID string)
	Start(ctx context.Context) error
	Stop()
}
