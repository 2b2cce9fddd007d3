package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration, loaded from environment
// variables with go-envconfig.
type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIBaseURL is where the request mediator sends directory calls.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:8080"`

	// TokenSecret signs the outbound bearer token; the mock backend
	// validates with the same value.
	TokenSecret string `env:"TOKEN_SECRET, default=portal-dev-secret"`

	// LoginLatency models the identity-provider round trip.
	LoginLatency time.Duration `env:"LOGIN_LATENCY, default=1s"`

	// SessionStore selects the record backend: file, redis, or memory.
	SessionStore string `env:"SESSION_STORE, default=file"`
	// SessionFile overrides the record path for the file backend.
	SessionFile string `env:"SESSION_FILE"`

	// CredentialSource selects the registry backend: static or mongo.
	CredentialSource string `env:"CREDENTIAL_SOURCE, default=static"`

	// Port is the listen port of the mock backend.
	Port string `env:"PORT, default=8080"`

	Redis RedisConfig
	Mongo MongoConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portal"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
