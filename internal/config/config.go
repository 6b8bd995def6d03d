// Package config loads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/aretw0/minerva/internal/logging"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix (MINERVA_ADDR, MINERVA_REDIS_ADDR, ...).
const Prefix = "MINERVA"

// Config holds every setting of the bot process.
type Config struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	GraphFile string `envconfig:"GRAPH_FILE"`
	StartNode string `envconfig:"START_NODE"`

	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	RedisPrefix   string        `envconfig:"REDIS_PREFIX" default:"minerva:session:"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"0s"`

	// UserIDSecret enables pseudonymous session keys when set.
	UserIDSecret string `envconfig:"USER_ID_SECRET"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	MaxInputSize int  `envconfig:"MAX_INPUT_SIZE" default:"4096"`
	Metrics      bool `envconfig:"METRICS" default:"true"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load reads the optional dotenv files and then the MINERVA_* environment.
// Variables already set in the environment win over dotenv values.
func Load(dotenv ...string) (*Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot check by type.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	if c.MaxInputSize <= 0 {
		return fmt.Errorf("MAX_INPUT_SIZE must be positive, got %d", c.MaxInputSize)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative, got %s", c.SessionTTL)
	}
	return nil
}

// Logger builds the process logger from LogLevel and LogFormat.
func (c *Config) Logger() *slog.Logger {
	level, _ := logging.ParseLevel(c.LogLevel)
	format, _ := logging.ParseFormat(c.LogFormat)
	return logging.New(level, format)
}

// UseRedis reports whether sessions go to Redis instead of memory.
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}
