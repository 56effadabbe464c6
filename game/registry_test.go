package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameRoom(t *testing.T) {
	registry := NewRegistry()

	_, ok := registry.Get("R1")
	require.False(t, ok)

	room := registry.GetOrCreate("R1")
	require.NotNil(t, room)
	require.Same(t, room, registry.GetOrCreate("R1"))

	got, ok := registry.Get("R1")
	require.True(t, ok)
	require.Same(t, room, got)
	require.Equal(t, 1, registry.Len())
}

func TestGetOrCreateConcurrent(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	rooms := make([]*Room, 50)
	for i := range rooms {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rooms[i] = registry.GetOrCreate("R1")
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, registry.Len())
	for _, room := range rooms {
		require.Same(t, rooms[0], room)
	}
}

func TestSweepEvictsIdleRooms(t *testing.T) {
	registry := NewRegistry()

	stale := registry.GetOrCreate("stale")
	registry.GetOrCreate("fresh")

	stale.mu.Lock()
	stale.lastActivity = time.Now().Add(-time.Hour)
	stale.mu.Unlock()

	registry.sweep(time.Now(), 30*time.Minute)

	_, ok := registry.Get("stale")
	require.False(t, ok)
	_, ok = registry.Get("fresh")
	require.True(t, ok)
}

func TestSweepKeepsActiveRooms(t *testing.T) {
	registry := NewRegistry()
	registry.GetOrCreate("R1")

	registry.sweep(time.Now(), time.Minute)

	require.Equal(t, 1, registry.Len())
}
