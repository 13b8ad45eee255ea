package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	Backend  BackendConfig
	Snapshot SnapshotConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type SessionConfig struct {
	// Secret signs the session cookie JWT. Must be set outside development.
	Secret string        `env:"SESSION_SECRET, default=dev-only-secret"`
	TTL    time.Duration `env:"SESSION_TTL,    default=720h"`
}

type BackendConfig struct {
	// BaseURL is the marketplace backend the gateway authenticates against.
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:5000"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=10s"`
}

type SnapshotConfig struct {
	// Driver selects where session snapshots live: redis or file.
	Driver string `env:"SNAPSHOT_DRIVER, default=redis"`
	// Dir is the snapshot directory for the file driver.
	Dir string `env:"SNAPSHOT_DIR, default=./data/sessions"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auction_gateway"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
