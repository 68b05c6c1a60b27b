// Package config loads service settings from an optional config file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Like counter drivers. "store" keeps counters in the storage driver.
const (
	LikesDriverStore = "store"
	LikesDriverRedis = "redis"
)

// Config represents the root configuration structure for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	Likes   LikesConfig   `mapstructure:"likes"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig defines logging verbosity and output style
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// StorageConfig selects the guestbook (and by default likes) backend
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// LikesConfig selects where like counters live and their initial values
type LikesConfig struct {
	Driver string           `mapstructure:"driver"`
	Seed   map[string]int64 `mapstructure:"seed"`
}

// RedisConfig is used when likes.driver is redis
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Load reads config.yaml from path (if present) and overrides it with
// PORTFOLIO_* environment variables. DATABASE_URL selects Postgres when no
// driver is configured explicitly.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database_url", "DATABASE_URL")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(v.GetString("storage.driver")))
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverMemory
		if dsn := strings.TrimSpace(v.GetString("database_url")); dsn != "" {
			cfg.Storage.Driver = DriverPostgres
			if cfg.Storage.DSN == "" {
				cfg.Storage.DSN = dsn
			}
		}
	}
	cfg.Likes.Driver = strings.ToLower(strings.TrimSpace(cfg.Likes.Driver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks driver names and their required settings.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if c.Storage.DSN == "" {
			return fmt.Errorf("config: storage.dsn is required for driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}
	switch c.Likes.Driver {
	case LikesDriverStore:
	case LikesDriverRedis:
		if c.Redis.Addr == "" {
			return errors.New("config: redis.addr is required when likes.driver is redis")
		}
	default:
		return fmt.Errorf("config: unknown likes.driver %q", c.Likes.Driver)
	}
	return nil
}

// setDefaults populates viper with fallback values if they are not provided via file or ENV
func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.read_header_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Logger
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Storage. storage.driver has no default so DATABASE_URL can pick postgres.
	v.SetDefault("storage.dsn", "")

	// Likes
	v.SetDefault("likes.driver", LikesDriverStore)
	v.SetDefault("likes.seed", map[string]int64{"portfolio": 37})

	// Redis
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "portfolio:likes:")
}
