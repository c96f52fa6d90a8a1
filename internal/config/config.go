// Package config loads runtime configuration: built-in defaults, an
// optional YAML file, then environment overrides, organised by concern.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort           = "8080"
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultBackendTimeout = 15 * time.Second
	defaultDebounce       = 250 * time.Millisecond
	defaultTemplatesDir   = "templates"
	defaultPublicDir      = "public"
)

// Duration is a time.Duration that accepts "250ms"-style strings or raw
// nanosecond integers in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("config: invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("config: invalid duration node: %w", err)
	}
	*d = Duration(n)
	return nil
}

// Std converts to the standard library type.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config captures all runtime configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Search  SearchConfig  `yaml:"search"`
	Session SessionConfig `yaml:"session"`
}

// ServerConfig configures the HTTP page server.
type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  Duration      `yaml:"read_timeout"`
	WriteTimeout Duration      `yaml:"write_timeout"`
	IdleTimeout  Duration      `yaml:"idle_timeout"`
	TemplatesDir string        `yaml:"templates_dir"`
	PublicDir    string        `yaml:"public_dir"`
	Dev          bool          `yaml:"dev"`
	// DevOrigins lists origins allowed to hit fragment routes cross-origin
	// during development (e.g. a frontend dev server).
	DevOrigins []string `yaml:"dev_origins"`
}

// BackendConfig points at the catalog/review/list API.
type BackendConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

// SearchConfig tunes the live search box.
type SearchConfig struct {
	Debounce Duration `yaml:"debounce"`
}

// SessionConfig configures the signed session cookie.
type SessionConfig struct {
	SigningKey string `yaml:"signing_key"`
	Secure     bool   `yaml:"secure"`
}

// Load builds the configuration. A missing file is not an error; defaults
// and environment variables still apply.
func Load(path string) (Config, error) {
	cfg := defaults()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to env
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	fillZero(&cfg)
	return cfg, nil
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:         defaultPort,
			ReadTimeout:  Duration(defaultReadTimeout),
			WriteTimeout: Duration(defaultWriteTimeout),
			IdleTimeout:  Duration(defaultIdleTimeout),
			TemplatesDir: defaultTemplatesDir,
			PublicDir:    defaultPublicDir,
		},
		Backend: BackendConfig{Timeout: Duration(defaultBackendTimeout)},
		Search:  SearchConfig{Debounce: Duration(defaultDebounce)},
	}
}

func applyEnv(cfg *Config) {
	if v := envOr("GAMESHELF_WEB_PORT", "PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("GAMESHELF_WEB_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("GAMESHELF_WEB_SESSION_SIGNING_KEY"); v != "" {
		cfg.Session.SigningKey = v
	}
	if envOr("GAMESHELF_WEB_DEV", "DEV") != "" {
		cfg.Server.Dev = true
	}
	if strings.EqualFold(os.Getenv("GAMESHELF_WEB_ENV"), "prod") {
		cfg.Session.Secure = true
		cfg.Server.Dev = false
	}
}

// fillZero restores defaults for fields a config file set to zero values.
func fillZero(cfg *Config) {
	if strings.TrimSpace(cfg.Server.Port) == "" {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = Duration(defaultReadTimeout)
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = Duration(defaultWriteTimeout)
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = Duration(defaultIdleTimeout)
	}
	if strings.TrimSpace(cfg.Server.TemplatesDir) == "" {
		cfg.Server.TemplatesDir = defaultTemplatesDir
	}
	if strings.TrimSpace(cfg.Server.PublicDir) == "" {
		cfg.Server.PublicDir = defaultPublicDir
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = Duration(defaultBackendTimeout)
	}
	if cfg.Search.Debounce <= 0 {
		cfg.Search.Debounce = Duration(defaultDebounce)
	}
}

// Addr returns the listen address for the configured port.
func (c ServerConfig) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func envOr(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(os.Getenv(n)); v != "" {
			return v
		}
	}
	return ""
}
