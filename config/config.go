// Package config loads the front end's settings from a YAML file, a .env
// file and the environment, in that order of increasing precedence.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendBolt  = "bolt"
	BackendRedis = "redis"
)

// SessionConfig selects and tunes the browser session store.
type SessionConfig struct {
	// Backend is "bolt" (default) or "redis".
	Backend   string `yaml:"backend"`
	BoltPath  string `yaml:"bolt_path"`
	RedisAddr string `yaml:"redis_addr"`
	// RedisPassword is never written back by Save.
	RedisPassword string `yaml:"redis_password,omitempty"`
	RedisDB       int    `yaml:"redis_db"`

	// MaxIdle is how long an untouched session is kept. Redis keys expire
	// after it; bolt records are removed by the sweeper.
	MaxIdle time.Duration `yaml:"max_idle"`
	// Sweep is the cron schedule (with seconds) of the bolt sweeper.
	Sweep string `yaml:"sweep"`

	SecureCookie bool `yaml:"secure_cookie"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address of the front end.
	Listen string `yaml:"listen"`

	// APIBaseURL is the booking service, e.g. "https://api.example.com".
	APIBaseURL string        `yaml:"api_base_url"`
	APITimeout time.Duration `yaml:"api_timeout"`
	// APIRateLimit caps outbound requests per second; 0 disables the limit.
	APIRateLimit float64 `yaml:"api_rate_limit"`
	APIBurst     int     `yaml:"api_burst"`

	// Timezone is the IANA zone dates are shown in. Empty means the host's.
	Timezone string `yaml:"timezone"`
	LogLevel string `yaml:"log_level"`

	// CSRFKey is 32 bytes, either raw or hex encoded. Empty generates a
	// random key per process, which invalidates forms on restart.
	CSRFKey string `yaml:"csrf_key,omitempty"`

	Session SessionConfig `yaml:"session"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:     "127.0.0.1:3000",
		APIBaseURL: "http://localhost:5000",
		APITimeout: 15 * time.Second,
		APIBurst:   1,
		LogLevel:   "info",
		Session: SessionConfig{
			Backend:   BackendBolt,
			BoltPath:  "sessions.db",
			RedisAddr: "localhost:6379",
			MaxIdle:   7 * 24 * time.Hour,
			Sweep:     "0 */10 * * * *",
		},
	}
}

// Normalize fills in missing values with defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()
	if c.Listen == "" {
		c.Listen = defaults.Listen
	}
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	if c.APIBaseURL == "" {
		c.APIBaseURL = defaults.APIBaseURL
	}
	if c.APITimeout <= 0 {
		c.APITimeout = defaults.APITimeout
	}
	if c.APIRateLimit < 0 {
		c.APIRateLimit = 0
	}
	if c.APIBurst < 1 {
		c.APIBurst = defaults.APIBurst
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	c.Session.Backend = strings.ToLower(strings.TrimSpace(c.Session.Backend))
	if c.Session.Backend == "" {
		c.Session.Backend = defaults.Session.Backend
	}
	if c.Session.BoltPath == "" {
		c.Session.BoltPath = defaults.Session.BoltPath
	}
	if c.Session.RedisAddr == "" {
		c.Session.RedisAddr = defaults.Session.RedisAddr
	}
	if c.Session.MaxIdle <= 0 {
		c.Session.MaxIdle = defaults.Session.MaxIdle
	}
	if c.Session.Sweep == "" {
		c.Session.Sweep = defaults.Session.Sweep
	}
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("api_base_url %q is not an http(s) URL", c.APIBaseURL)
	}
	switch c.Session.Backend {
	case BackendBolt, BackendRedis:
	default:
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Zone(); err != nil {
		return err
	}
	if c.CSRFKey != "" {
		if _, err := c.CSRFKeyBytes(); err != nil {
			return err
		}
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Zone loads Timezone, falling back to the host's zone when it is empty.
func (c *Config) Zone() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	return location, nil
}

// CSRFKeyBytes decodes CSRFKey.
func (c *Config) CSRFKeyBytes() ([]byte, error) {
	if decoded, err := hex.DecodeString(c.CSRFKey); err == nil && len(decoded) == 32 {
		return decoded, nil
	}
	if len(c.CSRFKey) == 32 {
		return []byte(c.CSRFKey), nil
	}
	return nil, errors.New("csrf_key must be 32 bytes or 64 hex characters")
}

// Load reads the YAML file at path, then a .env file in the working
// directory, then the environment. A missing YAML file is created with the
// defaults; an empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if err := Save(path, cfg); err != nil {
				return nil, fmt.Errorf("writing default config: %w", err)
			}
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	// The .env file is optional.
	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Listen, "LISTEN")
	setString(&c.APIBaseURL, "BASE_URL")
	setString(&c.APIBaseURL, "API_BASE_URL")
	setString(&c.Timezone, "TIMEZONE")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.CSRFKey, "CSRF_KEY")
	setString(&c.Session.Backend, "SESSION_BACKEND")
	setString(&c.Session.BoltPath, "BOLT_PATH")
	setString(&c.Session.RedisAddr, "REDIS_ADDR")
	setString(&c.Session.RedisPassword, "REDIS_PASSWORD")
	setString(&c.Session.Sweep, "SESSION_SWEEP")

	return errors.Join(
		setDuration(&c.APITimeout, "API_TIMEOUT"),
		setFloat(&c.APIRateLimit, "API_RATE_LIMIT"),
		setInt(&c.APIBurst, "API_BURST"),
		setInt(&c.Session.RedisDB, "REDIS_DB"),
		setDuration(&c.Session.MaxIdle, "SESSION_MAX_IDLE"),
		setBool(&c.Session.SecureCookie, "COOKIE_SECURE"),
	)
}

func setString(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*target = value
	}
}

func setInt(target *int, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = parsed
	return nil
}

func setFloat(target *float64, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = parsed
	return nil
}

func setDuration(target *time.Duration, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = parsed
	return nil
}

func setBool(target *bool, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = parsed
	return nil
}

// Save writes cfg to path atomically with 0600 permissions. The redis
// password stays out of the file.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	toWrite := *cfg
	toWrite.Session.RedisPassword = ""
	raw, err := yaml.Marshal(&toWrite)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".eventbuddy-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
