package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the relay configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Lookup   LookupConfig   `yaml:"lookup"`
	Breaker  BreakerConfig  `yaml:"breaker"`
	Database DatabaseConfig `yaml:"database"`
	Events   EventsConfig   `yaml:"events"`
	Cache    CacheConfig    `yaml:"cache"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LookupConfig controls the upstream model call.
type LookupConfig struct {
	APIKey      string        `yaml:"api_key"     env:"OPENAI_API_KEY"`
	BaseURL     string        `yaml:"base_url"    env:"OPENAI_BASE_URL"`
	Model       string        `yaml:"model"       env:"LOOKUP_MODEL"       env-default:"gpt-4o-mini"`
	Temperature float32       `yaml:"temperature" env:"LOOKUP_TEMPERATURE" env-default:"0.3"`
	Timeout     time.Duration `yaml:"timeout"     env:"LOOKUP_TIMEOUT"     env-default:"30s"`
}

// BreakerConfig tunes the circuit breaker around the model call.
type BreakerConfig struct {
	MaxRequests         uint32        `yaml:"max_requests"         env:"BREAKER_MAX_REQUESTS"         env-default:"1"`
	Interval            time.Duration `yaml:"interval"             env:"BREAKER_INTERVAL"             env-default:"60s"`
	Timeout             time.Duration `yaml:"timeout"              env:"BREAKER_TIMEOUT"              env-default:"30s"`
	ConsecutiveFailures uint32        `yaml:"consecutive_failures" env:"BREAKER_CONSECUTIVE_FAILURES" env-default:"5"`
}

// DatabaseConfig enables Postgres-backed vocabulary when URL is set.
type DatabaseConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL"`
}

// EventsConfig enables vocabulary.updated publishing when URL is set.
type EventsConfig struct {
	RabbitMQURL string `yaml:"rabbitmq_url" env:"RABBITMQ_URL"`
}

// CacheConfig enables the Redis lookup cache when URL is set.
type CacheConfig struct {
	RedisURL string        `yaml:"redis_url" env:"REDIS_URL"`
	TTL      time.Duration `yaml:"ttl"       env:"CACHE_TTL" env-default:"24h"`
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. The file path comes from CONFIG_PATH; when
// it is unset and ./config.yaml does not exist, only ENV and defaults apply.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that defaults cannot guarantee.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if strings.TrimSpace(c.Lookup.Model) == "" {
		errs = append(errs, errors.New("lookup.model is required"))
	}
	if c.Lookup.Temperature < 0 || c.Lookup.Temperature > 2 {
		errs = append(errs, fmt.Errorf("lookup.temperature %.2f must be within [0, 2]", c.Lookup.Temperature))
	}
	if c.Lookup.Timeout <= 0 {
		errs = append(errs, errors.New("lookup.timeout must be positive"))
	}
	if c.Breaker.ConsecutiveFailures == 0 {
		errs = append(errs, errors.New("breaker.consecutive_failures must be at least 1"))
	}
	if c.Cache.RedisURL != "" && c.Cache.TTL <= 0 {
		errs = append(errs, errors.New("cache.ttl must be positive when redis is enabled"))
	}

	return errors.Join(errs...)
}

// RequireAPIKey is checked only by commands that call the model.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.Lookup.APIKey) == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	return nil
}
