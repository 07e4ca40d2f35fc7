package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/healthcalc/healthcalc/internal/engine"
	"github.com/healthcalc/healthcalc/internal/formula"
	"github.com/healthcalc/healthcalc/internal/i18n"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultHTTPPort         = 8080
	DefaultVariant          = "hub"
	DefaultLocale           = "en"
	DefaultProfileBackend   = "memory"
	DefaultProfileKey       = "healthCalcProfile"
	DefaultRedisPrefix      = "healthcalc"
	DefaultWSResyncInterval = 30 * time.Second
	DefaultRemoteHost       = "health-calculator-api.p.rapidapi.com"
)

// Config is the top-level configuration of the healthcalc server.
// Fields map 1:1 to config.example.yaml.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Formula FormulaConfig `yaml:"formula"`
	Remote  RemoteConfig  `yaml:"remote"`
	Profile ProfileConfig `yaml:"profile"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// HTTPPort is the port the REST API, /calculate and the WebSocket hub
	// listen on.
	HTTPPort int `yaml:"http_port"`

	// Auth configures how the server authenticates incoming API requests.
	Auth AuthConfig `yaml:"auth"`

	// CORS lists the browser origins allowed to call the API.
	CORS CORSConfig `yaml:"cors"`

	// WSResyncInterval is how often the profile hub re-sends the stored
	// profile to every connected page.
	WSResyncInterval time.Duration `yaml:"ws_resync_interval"`
}

// AuthConfig configures API authentication.
type AuthConfig struct {
	// Mode is one of: apikey | none.
	Mode string `yaml:"mode"`

	// KeyEnv is the name of the environment variable holding the expected API key.
	KeyEnv string `yaml:"key_env"`
}

// Key returns the API key resolved from the environment.
func (a AuthConfig) Key() string {
	if a.KeyEnv == "" {
		return ""
	}
	return os.Getenv(a.KeyEnv)
}

// CORSConfig lists allowed browser origins. Empty allows every origin.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// FormulaConfig selects the constant set and the fallback display language.
// Both fields are hot-reloadable.
type FormulaConfig struct {
	// Variant is one of: hub | local.
	Variant string `yaml:"variant"`

	// DefaultLocale is used when a request names no locale: en | zh.
	DefaultLocale string `yaml:"default_locale"`
}

// ResolveVariant returns the formula.Variant named by Variant.
func (f FormulaConfig) ResolveVariant() formula.Variant {
	v, ok := formula.VariantByName(f.Variant)
	if !ok {
		return formula.Hub
	}
	return v
}

// Locale returns DefaultLocale as an i18n.Locale.
func (f FormulaConfig) Locale() i18n.Locale {
	return i18n.ParseLocale(f.DefaultLocale)
}

// RemoteConfig configures the optional remote calculator API.
type RemoteConfig struct {
	// Enabled turns on delegation for requests asking for a remote value.
	Enabled bool `yaml:"enabled"`

	// BaseURL is prefixed to /calculate/<path>.
	BaseURL string `yaml:"base_url"`

	// Host is sent as the X-RapidAPI-Host header.
	Host string `yaml:"host"`

	// KeyEnv is the name of the environment variable holding the
	// X-RapidAPI-Key value.
	KeyEnv string `yaml:"key_env"`

	// Calculators limits delegation to these calculator ids. Empty means
	// every calculator with a remote endpoint.
	Calculators []string `yaml:"calculators"`
}

// Key returns the remote API key resolved from the environment.
func (r RemoteConfig) Key() string {
	if r.KeyEnv == "" {
		return ""
	}
	return os.Getenv(r.KeyEnv)
}

// Delegates reports whether calculator id may be evaluated remotely.
func (r RemoteConfig) Delegates(id string) bool {
	if !r.Enabled {
		return false
	}
	c, ok := engine.Lookup(id)
	if !ok || !c.Remote {
		return false
	}
	if len(r.Calculators) == 0 {
		return true
	}
	for _, name := range r.Calculators {
		if other, ok := engine.Lookup(name); ok && other.ID == c.ID {
			return true
		}
	}
	return false
}

// ProfileConfig configures where the user profile is persisted.
type ProfileConfig struct {
	// Backend is one of: memory | file | sqlite | redis.
	Backend string `yaml:"backend"`

	// Path is the JSON file (file backend) or database file (sqlite backend).
	Path string `yaml:"path"`

	// Key is the fixed storage key the profile is kept under.
	Key string `yaml:"key"`

	// Redis holds the redis backend settings.
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds the redis connection settings.
type RedisConfig struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`

	// PasswordEnv is the name of the environment variable holding the password.
	PasswordEnv string `yaml:"password_env"`

	// Prefix namespaces the storage key: <prefix>:<key>.
	Prefix string `yaml:"prefix"`
}

// Password returns the redis password resolved from the environment.
func (r RedisConfig) Password() string {
	if r.PasswordEnv == "" {
		return ""
	}
	return os.Getenv(r.PasswordEnv)
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML config data, applying defaults and validation.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Default returns a Config pre-populated with default values. It is what the
// server runs with when no config file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:         DefaultHTTPPort,
			Auth:             AuthConfig{Mode: "none"},
			WSResyncInterval: DefaultWSResyncInterval,
		},
		Formula: FormulaConfig{
			Variant:       DefaultVariant,
			DefaultLocale: DefaultLocale,
		},
		Remote: RemoteConfig{
			Host: DefaultRemoteHost,
		},
		Profile: ProfileConfig{
			Backend: DefaultProfileBackend,
			Key:     DefaultProfileKey,
			Redis:   RedisConfig{Prefix: DefaultRedisPrefix},
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port %d out of range", cfg.Server.HTTPPort)
	}
	switch cfg.Server.Auth.Mode {
	case "apikey":
		if cfg.Server.Auth.KeyEnv == "" {
			return fmt.Errorf("server.auth.key_env is required for apikey mode")
		}
	case "none", "":
	default:
		return fmt.Errorf("server.auth: unknown mode %q", cfg.Server.Auth.Mode)
	}
	if cfg.Server.WSResyncInterval <= 0 {
		return fmt.Errorf("server.ws_resync_interval must be positive")
	}

	if _, ok := formula.VariantByName(cfg.Formula.Variant); !ok {
		return fmt.Errorf("formula.variant: unknown variant %q", cfg.Formula.Variant)
	}
	switch i18n.Locale(cfg.Formula.DefaultLocale) {
	case i18n.English, i18n.Chinese:
	default:
		return fmt.Errorf("formula.default_locale: unsupported locale %q", cfg.Formula.DefaultLocale)
	}

	if cfg.Remote.Enabled {
		u, err := url.Parse(cfg.Remote.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("remote.base_url %q is not an absolute URL", cfg.Remote.BaseURL)
		}
	}
	for i, name := range cfg.Remote.Calculators {
		c, ok := engine.Lookup(name)
		if !ok {
			return fmt.Errorf("remote.calculators[%d]: unknown calculator %q", i, name)
		}
		if !c.Remote {
			return fmt.Errorf("remote.calculators[%d]: %q has no remote endpoint", i, name)
		}
	}

	if cfg.Profile.Key == "" {
		return fmt.Errorf("profile.key is required")
	}
	switch cfg.Profile.Backend {
	case "memory":
	case "file", "sqlite":
		if cfg.Profile.Path == "" {
			return fmt.Errorf("profile.path is required for the %s backend", cfg.Profile.Backend)
		}
	case "redis":
		if cfg.Profile.Redis.Addr == "" {
			return fmt.Errorf("profile.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("profile.backend: unknown backend %q", cfg.Profile.Backend)
	}
	return nil
}
