// Package config loads service settings from an env file and the process environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Config holds runtime configuration for the service.
type Config struct {
	AppHost            string        `envconfig:"APP_HOST" default:"localhost"`
	AppPort            string        `envconfig:"APP_PORT" default:"8000"`
	LogLevel           string        `envconfig:"APP_LOG_LEVEL" default:"info"`
	AppReadTimeout     time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout    time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"10s"`

	DBDriver      string `envconfig:"DB_DRIVER" default:"pgx"`
	DBAutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	PGHost         string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PGPort         int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PGUser         string `envconfig:"POSTGRES_USER" default:"user"`
	PGPassword     string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	PGDB           string `envconfig:"POSTGRES_DB" default:"neko"`
	PGMaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"16"`
	PGMaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"8"`

	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/neko.db"`

	// Empty RedisAddr disables the user cache.
	RedisAddr         string `envconfig:"REDIS_ADDR"`
	RedisDB           int    `envconfig:"REDIS_DB" default:"0"`
	RedisPassword     string `envconfig:"REDIS_PASSWORD"`
	RedisPoolSize     int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
	RedisMinIdleConns int    `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	RedisExpSecond    int    `envconfig:"REDIS_EXP_SECOND" default:"60"`

	// Empty KafkaBrokers disables cat event publishing.
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"cat-events"`

	// Empty GRPCPort disables the gRPC health server.
	GRPCPort string `envconfig:"GRPC_PORT"`

	JWTSecretKey string `envconfig:"JWT_SECRET_KEY" default:"my_super_secret_key"`
	JWTExpSecond int    `envconfig:"JWT_EXP_SECOND" default:"3600"`

	IdentityHeaderEnabled  bool   `envconfig:"IDENTITY_HEADER_ENABLED" default:"true"`
	PasswordHasher         string `envconfig:"PASSWORD_HASHER" default:"sha256"`
	AuthRateLimitPerMinute int    `envconfig:"AUTH_RATE_LIMIT_PER_MINUTE" default:"60"`
}

// Load reads the env file at path (a missing file is not an error) and
// decodes the environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that envconfig cannot express.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTSecretKey == "" {
		return fmt.Errorf("config: JWT_SECRET_KEY must be provided")
	}
	if c.AuthRateLimitPerMinute <= 0 {
		return fmt.Errorf("config: AUTH_RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// PostgresDSN assembles the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// JWTExpiration returns the token lifetime.
func (c *Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpSecond) * time.Second
}

// RedisExpiration returns the user cache TTL.
func (c *Config) RedisExpiration() time.Duration {
	return time.Duration(c.RedisExpSecond) * time.Second
}
