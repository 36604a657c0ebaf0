package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/numeral/internal/logging"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "numeral.yaml"

const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the application configuration.
// Sources, lowest precedence first: defaults, YAML file, NUMERAL_* environment variables.
type Config struct {
	LogLevel string      `yaml:"log_level" env:"NUMERAL_LOG_LEVEL"`
	Cache    CacheConfig `yaml:"cache" envPrefix:"NUMERAL_CACHE_"`
	HTTP     HTTPConfig  `yaml:"http" envPrefix:"NUMERAL_HTTP_"`
	MCP      MCPConfig   `yaml:"mcp" envPrefix:"NUMERAL_MCP_"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend  string      `yaml:"backend" env:"BACKEND"`
	Capacity int         `yaml:"capacity" env:"CAPACITY"`
	Redis    RedisConfig `yaml:"redis" envPrefix:"REDIS_"`
}

// RedisConfig holds the connection settings for the Redis cache.
type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"ADDR"`
	Password string        `yaml:"password" env:"PASSWORD"`
	DB       int           `yaml:"db" env:"DB"`
	Prefix   string        `yaml:"prefix" env:"PREFIX"`
	TTL      time.Duration `yaml:"ttl" env:"TTL"`
}

// HTTPConfig configures `numeral serve`.
type HTTPConfig struct {
	Port    string `yaml:"port" env:"PORT"`
	Metrics bool   `yaml:"metrics" env:"METRICS"`
}

// MCPConfig configures `numeral mcp`.
type MCPConfig struct {
	Transport string `yaml:"transport" env:"TRANSPORT"`
	Port      int    `yaml:"port" env:"PORT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Cache: CacheConfig{
			Backend:  CacheNone,
			Capacity: 1024,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "numeral:result:",
			},
		},
		HTTP: HTTPConfig{
			Port:    "8080",
			Metrics: true,
		},
		MCP: MCPConfig{
			Transport: "stdio",
			Port:      8081,
		},
	}
}

// Load reads the YAML file at path (a missing file is not an error),
// applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No file: defaults plus environment.
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no component can act on.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "", CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unknown cache backend %q (supported: none, memory, redis)", c.Cache.Backend)
	}
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("cache capacity must not be negative, got %d", c.Cache.Capacity)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.Redis.Addr == "" {
		return errors.New("redis cache requires an address")
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("unknown MCP transport %q (supported: stdio, sse)", c.MCP.Transport)
	}
	return nil
}
