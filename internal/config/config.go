package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env                  string        `yaml:"env"`
	LogLevel             string        `yaml:"log_level"`
	HTTPAddr             string        `yaml:"http_addr"`
	SessionCookie        string        `yaml:"session_cookie"`
	SessionIdleTimeout   time.Duration `yaml:"session_idle_timeout"`
	SessionSweepInterval time.Duration `yaml:"session_sweep_interval"`
	ShutdownTimeout      time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfigFile is read when CONFIG_FILE is unset. It is optional.
const DefaultConfigFile = "config.yaml"

var (
	cfg     *Config
	loadErr error
	once    sync.Once
)

func Default() *Config {
	return &Config{
		Env:                  "development",
		LogLevel:             "info",
		HTTPAddr:             ":8088",
		SessionCookie:        "baebyzleep_session",
		SessionIdleTimeout:   2 * time.Hour,
		SessionSweepInterval: time.Minute,
		ShutdownTimeout:      10 * time.Second,
	}
}

// Load returns the process-wide config, read from CONFIG_FILE (or
// DefaultConfigFile) on first use. Later calls return the same result.
func Load() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = LoadFrom(getEnv("CONFIG_FILE", DefaultConfigFile))
	})
	return cfg, loadErr
}

// LoadFrom layers defaults, the YAML file at path (skipped if missing), a
// .env file and the process environment, in increasing precedence.
func LoadFrom(path string) (*Config, error) {
	c := Default()
	if path != "" {
		if err := c.loadYAML(path); err != nil {
			return nil, err
		}
	}
	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	c.Env = getEnv("APP_ENV", c.Env)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.HTTPAddr = getEnv("HTTP_ADDR", c.HTTPAddr)
	c.SessionCookie = getEnv("SESSION_COOKIE", c.SessionCookie)

	var err error
	if c.SessionIdleTimeout, err = getEnvDuration("SESSION_IDLE_TIMEOUT", c.SessionIdleTimeout); err != nil {
		return nil, err
	}
	if c.SessionSweepInterval, err = getEnvDuration("SESSION_SWEEP_INTERVAL", c.SessionSweepInterval); err != nil {
		return nil, err
	}
	if c.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	if c.SessionCookie == "" {
		return errors.New("SESSION_COOKIE must not be empty")
	}
	if c.SessionIdleTimeout <= 0 || c.SessionSweepInterval <= 0 {
		return errors.New("SESSION_IDLE_TIMEOUT and SESSION_SWEEP_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// loadDotEnv exports KEY=VALUE lines from path. Variables already present
// in the environment are left alone.
func loadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if _, set := os.LookupEnv(k); set {
			continue
		}
		os.Setenv(k, strings.Trim(strings.TrimSpace(v), `"`))
	}
	return sc.Err()
}
