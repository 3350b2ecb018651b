package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreRedis = "redis"
	StoreMongo = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// TimeZone is the zone calendar dates are interpreted in.
	TimeZone string `env:"TIME_ZONE, default=America/Bahia"`
	// ReservationRoles may open the reservation form. Empty allows any
	// signed-in user.
	ReservationRoles []string `env:"RESERVATION_ROLES, default=ADMIN,PROFESSOR"`

	Session SessionConfig
	Backend BackendConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Secret     string        `env:"SESSION_SECRET, required"`
	TTL        time.Duration `env:"SESSION_TTL,    default=8h"`
	Store      string        `env:"SESSION_STORE,  default=redis"`
	CookieName string        `env:"SESSION_COOKIE, default=reservas_session"`
	Secure     bool          `env:"SESSION_SECURE, default=false"`
}

type BackendConfig struct {
	URL     string        `env:"BACKEND_URL,     default=http://localhost:8081/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT, default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=reservas_web"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// IsDevelopment reports whether the process runs with developer ergonomics
// (pretty logs, verbose errors).
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, nil)
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	ec := &envconfig.Config{Target: &cfg}
	if lookuper != nil {
		ec.Lookuper = lookuper
	}
	if err := envconfig.ProcessWith(ctx, ec); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.Session.Store {
	case StoreRedis, StoreMongo:
	default:
		return nil, fmt.Errorf("config: unsupported SESSION_STORE %q", cfg.Session.Store)
	}
	return &cfg, nil
}

// MustLoad is Load for main: it panics on invalid configuration.
func MustLoad(ctx context.Context) *Config {
	cfg, err := Load(ctx)
	if err != nil {
		panic(err)
	}
	return cfg
}
