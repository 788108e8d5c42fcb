package runtime

import (
	"auction-lab/contract"
	"auction-lab/domain"
	"auction-lab/livefeed"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var _ contract.IRooms = (*Rooms)(nil)

type managedRoom struct {
	room    *domain.Room
	adapter *livefeed.Adapter
}

// Rooms owns the per-room state map. Rooms are created lazily on first
// reference and reclaimed by Sweep once idle, never while their auction
// is running. The map is never handed out raw; all access goes through
// this API.
type Rooms struct {
	log            *slog.Logger
	clock          clockwork.Clock
	defaultAccount string
	idleThreshold  time.Duration
	newAdapter     func(room *domain.Room) *livefeed.Adapter

	mu    sync.RWMutex
	rooms map[string]*managedRoom
}

func NewRooms(
	log *slog.Logger,
	clock clockwork.Clock,
	defaultAccount string,
	idleThreshold time.Duration,
	newAdapter func(room *domain.Room) *livefeed.Adapter,
) *Rooms {
	return &Rooms{
		log:            log,
		clock:          clock,
		defaultAccount: defaultAccount,
		idleThreshold:  idleThreshold,
		newAdapter:     newAdapter,
		rooms:          make(map[string]*managedRoom),
	}
}

// GetOrCreate returns the room, constructing it with the default target
// account on first reference. A new room dials its live feed in the
// background so callers are never blocked on the network; the dial and
// its retries run on the adapter's own lifetime, not the caller's.
func (rs *Rooms) GetOrCreate(id string) (*domain.Room, *livefeed.Adapter) {
	now := rs.clock.Now()

	rs.mu.RLock()
	entry, ok := rs.rooms[id]
	rs.mu.RUnlock()
	if ok {
		entry.room.Touch(now)
		return entry.room, entry.adapter
	}

	rs.mu.Lock()
	if entry, ok = rs.rooms[id]; ok {
		rs.mu.Unlock()
		entry.room.Touch(now)
		return entry.room, entry.adapter
	}
	room := domain.NewRoom(id, rs.defaultAccount, now)
	entry = &managedRoom{room: room, adapter: rs.newAdapter(room)}
	rs.rooms[id] = entry
	rs.mu.Unlock()

	rs.log.Info("room created", "room", id, "account", rs.defaultAccount)
	go entry.adapter.Connect()
	return entry.room, entry.adapter
}

// Get returns an existing room without creating one.
func (rs *Rooms) Get(id string) (*domain.Room, *livefeed.Adapter, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	entry, ok := rs.rooms[id]
	if !ok {
		return nil, nil, false
	}
	return entry.room, entry.adapter, true
}

// ForEach visits every room outside the registry lock, so a slow visitor
// cannot stall room creation.
func (rs *Rooms) ForEach(fn func(room *domain.Room)) {
	rs.mu.RLock()
	snapshot := make([]*managedRoom, 0, len(rs.rooms))
	for _, entry := range rs.rooms {
		snapshot = append(snapshot, entry)
	}
	rs.mu.RUnlock()

	for _, entry := range snapshot {
		fn(entry.room)
	}
}

// Sweep evicts every room idle past the threshold whose auction is not
// running. The live feed is fully torn down (connection closed, pending
// reconnect countdown stopped) before the room leaves the map.
func (rs *Rooms) Sweep(now time.Time) int {
	rs.mu.Lock()
	var evicted []*managedRoom
	for id, entry := range rs.rooms {
		if entry.room.Evictable(now, rs.idleThreshold) {
			evicted = append(evicted, entry)
			delete(rs.rooms, id)
		}
	}
	rs.mu.Unlock()

	for _, entry := range evicted {
		entry.adapter.Close()
		rs.log.Info("idle room evicted", "room", entry.room.ID)
	}
	return len(evicted)
}

func (rs *Rooms) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.rooms)
}
