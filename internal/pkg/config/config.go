package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"        validate:"required,numeric"`
	Env      string `env:"ENV,       default=development" validate:"oneof=development staging production"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// RateLimit is requests per second per client on /admin; 0 disables it.
	RateLimit    float64 `env:"ADMIN_RATE_LIMIT, default=20" validate:"gte=0"`
	AuditWorkers int     `env:"AUDIT_WORKERS,    default=4"  validate:"gte=1,lte=64"`
	BcryptCost   int     `env:"BCRYPT_COST,      default=10" validate:"gte=4,lte=31"`

	Cache CacheConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type CacheConfig struct {
	Backend string `env:"CACHE_BACKEND,   default=memory"    validate:"oneof=memory redis"`
	Key     string `env:"CACHE_REDIS_KEY, default=app_cache"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017" validate:"required"`
	Database string `env:"MONGO_DB,  default=journal"                   validate:"required"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379" validate:"required_if=Enabled true"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"              validate:"gte=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"             validate:"gte=1"`

	// Enabled is derived from Cache.Backend after loading.
	Enabled bool
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	cfg.Redis.Enabled = cfg.Cache.Backend == CacheRedis

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Address returns the listen address for the HTTP server.
func (c *Config) Address() string {
	return ":" + c.Port
}

// IsDevelopment reports whether the service runs in the development env.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
