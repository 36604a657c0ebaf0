package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numeral.yaml")
	content := `
log_level: debug
cache:
  backend: redis
  redis:
    addr: cache:6379
    ttl: 10m
http:
  port: "9090"
  metrics: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Cache.Redis.TTL)
	assert.Equal(t, "numeral:result:", cfg.Cache.Redis.Prefix, "unset keys keep their defaults")
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.False(t, cfg.HTTP.Metrics)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numeral.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  backend: memory\n"), 0644))

	t.Setenv("NUMERAL_CACHE_BACKEND", "none")
	t.Setenv("NUMERAL_HTTP_PORT", "7000")
	t.Setenv("NUMERAL_CACHE_REDIS_TTL", "30s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, CacheNone, cfg.Cache.Backend)
	assert.Equal(t, "7000", cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.Cache.Redis.TTL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numeral.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"bad backend", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"negative capacity", func(c *Config) { c.Cache.Capacity = -1 }, true},
		{"redis without addr", func(c *Config) { c.Cache.Backend = CacheRedis; c.Cache.Redis.Addr = "" }, true},
		{"bad transport", func(c *Config) { c.MCP.Transport = "websocket" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
