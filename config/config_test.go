package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "eventbuddy.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Listen, cfg.Listen)
	assert.Equal(t, BackendBolt, cfg.Session.Backend)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadReadsYAMLAndEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventbuddy.yaml")
	raw := strings.Join([]string{
		"listen: 0.0.0.0:8080",
		"api_base_url: https://api.example.com/",
		"api_timeout: 5s",
		"log_level: debug",
		"session:",
		"  backend: redis",
		"  redis_addr: cache:6379",
		"  max_idle: 2h",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	t.Setenv("LISTEN", ":9000")
	t.Setenv("API_RATE_LIMIT", "2.5")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, 2.5, cfg.APIRateLimit)
	assert.Equal(t, BackendRedis, cfg.Session.Backend)
	assert.Equal(t, "cache:6379", cfg.Session.RedisAddr)
	assert.Equal(t, 2*time.Hour, cfg.Session.MaxIdle)
	assert.True(t, cfg.Session.SecureCookie)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("backend", func(t *testing.T) {
		t.Setenv("SESSION_BACKEND", "memcached")
		_, err := Load("")
		assert.ErrorContains(t, err, "memcached")
	})
	t.Run("duration", func(t *testing.T) {
		t.Setenv("API_TIMEOUT", "soon")
		_, err := Load("")
		assert.ErrorContains(t, err, "API_TIMEOUT")
	})
	t.Run("base url", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "ftp://example.com")
		_, err := Load("")
		assert.Error(t, err)
	})
	t.Run("timezone", func(t *testing.T) {
		t.Setenv("TIMEZONE", "Mars/Olympus_Mons")
		_, err := Load("")
		assert.ErrorContains(t, err, "timezone")
	})
}

func TestCSRFKeyBytes(t *testing.T) {
	cfg := DefaultConfig()

	cfg.CSRFKey = strings.Repeat("ab", 32)
	key, err := cfg.CSRFKeyBytes()
	require.NoError(t, err)
	assert.Len(t, key, 32)

	cfg.CSRFKey = strings.Repeat("k", 32)
	key, err = cfg.CSRFKeyBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte(cfg.CSRFKey), key)

	cfg.CSRFKey = "short"
	_, err = cfg.CSRFKeyBytes()
	assert.Error(t, err)
	assert.Error(t, cfg.Validate())
}

func TestSaveOmitsRedisPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventbuddy.yaml")
	cfg := DefaultConfig()
	cfg.Session.RedisPassword = "hunter2"

	require.NoError(t, Save(path, cfg))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hunter2")
	assert.Equal(t, "hunter2", cfg.Session.RedisPassword)
}
