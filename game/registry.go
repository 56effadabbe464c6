package game

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Registry maps room keys to rooms for the lifetime of the process. Lookups
// and lazy creation are safe across concurrently handled connections.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

func (reg *Registry) Get(key string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[key]
	return room, ok
}

// GetOrCreate returns the room for key, creating it empty on first contact.
func (reg *Registry) GetOrCreate(key string) *Room {
	reg.mu.RLock()
	room, ok := reg.rooms[key]
	reg.mu.RUnlock()
	if ok {
		return room
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if room, ok := reg.rooms[key]; ok {
		return room
	}
	room = newRoom()
	reg.rooms[key] = room
	log.Info().Str("room", key).Msg("Room created")
	return room
}

func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// StartSweeper evicts rooms idle longer than ttl, checking every interval.
// A ttl of zero disables eviction and rooms live for the process lifetime.
func (reg *Registry) StartSweeper(ctx context.Context, ttl, interval time.Duration) {
	if ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				reg.sweep(time.Now(), ttl)
			}
		}
	}()
}

func (reg *Registry) sweep(now time.Time, ttl time.Duration) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for key, room := range reg.rooms {
		room.mu.Lock()
		idle := now.Sub(room.lastActivity)
		room.mu.Unlock()
		if idle > ttl {
			delete(reg.rooms, key)
			log.Info().Str("room", key).Dur("idle", idle).Msg("Evicted idle room")
		}
	}
}
