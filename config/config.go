package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host          string        `envconfig:"HOST" default:"0.0.0.0"`
	Port          int           `envconfig:"PORT" default:"8080"`
	Logging       bool          `envconfig:"LOGGING" default:"false"`
	LogFile       string        `envconfig:"LOG_FILE" default:"myapp.log"`
	AllowedOrigin string        `envconfig:"ALLOWED_ORIGIN" default:"*"`
	RoomTTL       time.Duration `envconfig:"ROOM_TTL" default:"0"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
}

// Load reads a local .env if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
