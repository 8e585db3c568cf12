// Package config resolves runtime settings from defaults, an optional YAML
// file and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"cinema-tui/store"
)

const (
	DefaultAPIURL        = "http://localhost:8080/v1"
	DefaultRedirectDelay = 2 * time.Second
	DefaultLogLevel      = logrus.InfoLevel

	envAPIURL   = "CINEMA_API_URL"
	envLogLevel = "CINEMA_LOG_LEVEL"
	envLogFile  = "CINEMA_LOG_FILE"
	envConfig   = "CINEMA_CONFIG"

	fileName    = "config.yaml"
	logFileName = "cinema-tui.log"
)

type Config struct {
	APIURL         string
	RequestTimeout time.Duration
	RedirectDelay  time.Duration
	LogFile        string
	LogLevel       logrus.Level
}

type fileConfig struct {
	APIURL         string `yaml:"api_url"`
	RequestTimeout string `yaml:"request_timeout"`
	RedirectDelay  string `yaml:"redirect_delay"`
	LogFile        string `yaml:"log_file"`
	LogLevel       string `yaml:"log_level"`
}

func Default() Config {
	cfg := Config{
		APIURL:        DefaultAPIURL,
		RedirectDelay: DefaultRedirectDelay,
		LogLevel:      DefaultLogLevel,
	}
	if path, err := store.CachePath(logFileName); err == nil {
		cfg.LogFile = path
	}
	return cfg
}

// DefaultPath returns the config file location, honouring CINEMA_CONFIG.
func DefaultPath() (string, error) {
	if path := strings.TrimSpace(os.Getenv(envConfig)); path != "" {
		return path, nil
	}
	return store.ConfigPath(fileName)
}

// Load reads path (a missing file is not an error) and applies environment
// overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.applyYAML(data); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyYAML(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	if fc.APIURL != "" {
		c.APIURL = fc.APIURL
	}
	if fc.LogFile != "" {
		c.LogFile = fc.LogFile
	}
	if fc.RequestTimeout != "" {
		d, err := parseDuration("request_timeout", fc.RequestTimeout)
		if err != nil {
			return err
		}
		c.RequestTimeout = d
	}
	if fc.RedirectDelay != "" {
		d, err := parseDuration("redirect_delay", fc.RedirectDelay)
		if err != nil {
			return err
		}
		c.RedirectDelay = d
	}
	if fc.LogLevel != "" {
		level, err := logrus.ParseLevel(fc.LogLevel)
		if err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
		c.LogLevel = level
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(envAPIURL)); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogFile)); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envLogLevel, err)
		}
		c.LogLevel = level
	}
	return nil
}

func parseDuration(key string, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}

// OpenLog points logger at the configured log file. The terminal belongs to
// the TUI, so nothing is written to stderr. The returned close function is
// always non-nil.
func (c Config) OpenLog(logger *logrus.Logger) (func() error, error) {
	logger.SetLevel(c.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if c.LogFile == "" {
		logger.SetOutput(discard{})
		return func() error { return nil }, nil
	}
	if err := os.MkdirAll(dirOf(c.LogFile), 0o755); err != nil {
		return func() error { return nil }, err
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return func() error { return nil }, err
	}
	logger.SetOutput(f)
	return f.Close, nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func dirOf(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i > 0 {
		return path[:i]
	}
	return "."
}
