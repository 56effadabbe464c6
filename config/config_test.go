package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("LOGGING", "true")
	t.Setenv("ALLOWED_ORIGIN", "https://example.com")
	t.Setenv("ROOM_TTL", "30m")
	t.Setenv("SWEEP_INTERVAL", "5m")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Host)
	require.Equal(t, 9090, cfg.Port)
	require.True(t, cfg.Logging)
	require.Equal(t, "https://example.com", cfg.AllowedOrigin)
	require.Equal(t, 30*time.Minute, cfg.RoomTTL)
	require.Equal(t, 5*time.Minute, cfg.SweepInterval)
	require.Equal(t, "127.0.0.1:9090", cfg.Addr())
}

func TestDefaults(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "LOGGING", "ALLOWED_ORIGIN", "ROOM_TTL", "SWEEP_INTERVAL"} {
		t.Setenv(key, "") // register restore, then clear for real
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
	require.Equal(t, time.Duration(0), cfg.RoomTTL)
	require.False(t, cfg.Logging)
}
