package runtime

import (
	"auction-lab/contract"
	"sync"
)

type Set map[string]struct{}

// Registry tracks which observers watch which rooms and resolves their
// push channels. An observer's sink is managed in a single place even if
// it watches several rooms.
type Registry struct {
	mu          sync.RWMutex
	Sessions    map[string]contract.EventSink // observer -> sink
	RoomMembers map[string]Set                // room -> observers
}

func NewRegistry() *Registry {
	return &Registry{
		Sessions:    make(map[string]contract.EventSink),
		RoomMembers: make(map[string]Set),
	}
}

// GetSinksForRoom resolves the active push channels for one room.
// Returns nil if the room has no observers.
func (r *Registry) GetSinksForRoom(roomID string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.RoomMembers[roomID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for observerID := range members {
		if sink, exists := r.Sessions[observerID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers an observer's push channel and attaches it to a room,
// initializing the room's member set on the fly.
func (r *Registry) Subscribe(observerID string, roomID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sessions[observerID] = sink

	if _, ok := r.RoomMembers[roomID]; !ok {
		r.RoomMembers[roomID] = make(Set)
	}
	r.RoomMembers[roomID][observerID] = struct{}{}
}

// Unsubscribe detaches an observer, leaving no empty member sets behind.
func (r *Registry) Unsubscribe(observerID string, roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.Sessions, observerID)

	if members, ok := r.RoomMembers[roomID]; ok {
		delete(members, observerID)

		if len(members) == 0 {
			delete(r.RoomMembers, roomID)
		}
	}
}
