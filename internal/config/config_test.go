package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/healthcalc/healthcalc/internal/formula"
	"github.com/healthcalc/healthcalc/internal/i18n"
)

func TestLoad_Valid(t *testing.T) {
	yaml := `
server:
  http_port: 9090
  auth:
    mode: apikey
    key_env: HEALTHCALC_API_KEY
  cors:
    allowed_origins: ["https://calc.example.com"]
  ws_resync_interval: 10s
formula:
  variant: local
  default_locale: zh
remote:
  enabled: true
  base_url: "https://health-calculator-api.p.rapidapi.com"
  key_env: RAPIDAPI_KEY
  calculators: [bmi, body-fat-percentage, macronutrients]
profile:
  backend: sqlite
  path: /var/lib/healthcalc/profile.db
`
	cfg := loadFromString(t, yaml)

	if cfg.Server.HTTPPort != 9090 {
		t.Errorf("http_port: got %d", cfg.Server.HTTPPort)
	}
	if cfg.Server.Auth.Mode != "apikey" || cfg.Server.Auth.KeyEnv != "HEALTHCALC_API_KEY" {
		t.Errorf("auth: got %+v", cfg.Server.Auth)
	}
	if len(cfg.Server.CORS.AllowedOrigins) != 1 {
		t.Errorf("cors origins: got %v", cfg.Server.CORS.AllowedOrigins)
	}
	if cfg.Server.WSResyncInterval != 10*time.Second {
		t.Errorf("ws_resync_interval: got %v", cfg.Server.WSResyncInterval)
	}
	if cfg.Formula.ResolveVariant().Name != formula.Local.Name {
		t.Errorf("variant: got %q", cfg.Formula.ResolveVariant().Name)
	}
	if cfg.Formula.Locale() != i18n.Chinese {
		t.Errorf("locale: got %q", cfg.Formula.Locale())
	}
	if !cfg.Remote.Enabled || len(cfg.Remote.Calculators) != 3 {
		t.Errorf("remote: got %+v", cfg.Remote)
	}
	if cfg.Profile.Backend != "sqlite" || cfg.Profile.Path == "" {
		t.Errorf("profile: got %+v", cfg.Profile)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFromString(t, "{}\n")

	if cfg.Server.HTTPPort != DefaultHTTPPort {
		t.Errorf("default http_port: got %d, want %d", cfg.Server.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Server.WSResyncInterval != DefaultWSResyncInterval {
		t.Errorf("default ws_resync_interval: got %v", cfg.Server.WSResyncInterval)
	}
	if cfg.Formula.Variant != DefaultVariant {
		t.Errorf("default variant: got %q", cfg.Formula.Variant)
	}
	if cfg.Formula.Locale() != i18n.English {
		t.Errorf("default locale: got %q", cfg.Formula.Locale())
	}
	if cfg.Profile.Backend != DefaultProfileBackend {
		t.Errorf("default backend: got %q", cfg.Profile.Backend)
	}
	if cfg.Profile.Key != DefaultProfileKey {
		t.Errorf("default profile key: got %q, want %q", cfg.Profile.Key, DefaultProfileKey)
	}
	if cfg.Remote.Host != DefaultRemoteHost {
		t.Errorf("default remote host: got %q", cfg.Remote.Host)
	}
	if cfg.Remote.Enabled {
		t.Error("remote should be disabled by default")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"port out of range", "server:\n  http_port: 70000\n"},
		{"unknown auth mode", "server:\n  auth:\n    mode: magictoken\n"},
		{"apikey without key_env", "server:\n  auth:\n    mode: apikey\n"},
		{"zero resync interval", "server:\n  ws_resync_interval: 0s\n"},
		{"unknown variant", "formula:\n  variant: metric\n"},
		{"unsupported locale", "formula:\n  default_locale: fr\n"},
		{"remote without base_url", "remote:\n  enabled: true\n"},
		{"unknown remote calculator", "remote:\n  calculators: [bogus]\n"},
		{"local-only remote calculator", "remote:\n  calculators: [water_intake]\n"},
		{"file backend without path", "profile:\n  backend: file\n"},
		{"sqlite backend without path", "profile:\n  backend: sqlite\n"},
		{"redis backend without addr", "profile:\n  backend: redis\n"},
		{"unknown backend", "profile:\n  backend: etcd\n"},
		{"empty profile key", "profile:\n  key: \"\"\n"},
		{"malformed yaml", "server: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadStringErr(t, tc.yaml); err == nil {
				t.Fatalf("expected error for %s, got nil", tc.name)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoad_ProfileBackends(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"memory", "profile:\n  backend: memory\n"},
		{"file", "profile:\n  backend: file\n  path: profile.json\n"},
		{"sqlite", "profile:\n  backend: sqlite\n  path: profile.db\n"},
		{"redis", "profile:\n  backend: redis\n  redis:\n    addr: localhost:6379\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := loadFromString(t, tc.yaml)
			if cfg.Profile.Backend != tc.name {
				t.Errorf("backend: got %q, want %q", cfg.Profile.Backend, tc.name)
			}
			if cfg.Profile.Redis.Prefix != DefaultRedisPrefix {
				t.Errorf("redis prefix: got %q", cfg.Profile.Redis.Prefix)
			}
		})
	}
}

func TestAuthConfig_Key(t *testing.T) {
	t.Setenv("TEST_API_KEY", "supersecret")
	a := AuthConfig{Mode: "apikey", KeyEnv: "TEST_API_KEY"}
	if got := a.Key(); got != "supersecret" {
		t.Errorf("Key(): got %q, want %q", got, "supersecret")
	}
}

func TestAuthConfig_Key_Empty(t *testing.T) {
	a := AuthConfig{Mode: "apikey"}
	if got := a.Key(); got != "" {
		t.Errorf("Key() with no KeyEnv: got %q, want empty", got)
	}
}

func TestRemoteConfig_Key(t *testing.T) {
	t.Setenv("TEST_RAPIDAPI_KEY", "rk-123")
	r := RemoteConfig{KeyEnv: "TEST_RAPIDAPI_KEY"}
	if got := r.Key(); got != "rk-123" {
		t.Errorf("Key(): got %q", got)
	}
}

func TestRedisConfig_Password(t *testing.T) {
	t.Setenv("TEST_REDIS_PASSWORD", "hunter2")
	r := RedisConfig{PasswordEnv: "TEST_REDIS_PASSWORD"}
	if got := r.Password(); got != "hunter2" {
		t.Errorf("Password(): got %q", got)
	}
	if got := (RedisConfig{}).Password(); got != "" {
		t.Errorf("Password() with no env: got %q, want empty", got)
	}
}

func TestRemoteConfig_Delegates(t *testing.T) {
	all := RemoteConfig{Enabled: true}
	some := RemoteConfig{Enabled: true, Calculators: []string{"bmi", "body-fat-percentage"}}
	off := RemoteConfig{Calculators: []string{"bmi"}}

	tests := []struct {
		name string
		cfg  RemoteConfig
		id   string
		want bool
	}{
		{"all remote calculators", all, "bmr", true},
		{"local-only never delegated", all, "water_intake", false},
		{"unknown calculator", all, "bogus", false},
		{"listed by id", some, "bmi", true},
		{"listed by path", some, "body_fat", true},
		{"not listed", some, "bmr", false},
		{"disabled", off, "bmi", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Delegates(tc.id); got != tc.want {
				t.Errorf("Delegates(%q) = %v, want %v", tc.id, got, tc.want)
			}
		})
	}
}

func TestFormulaConfig_ResolveVariantFallsBackToHub(t *testing.T) {
	if got := (FormulaConfig{Variant: "nonsense"}).ResolveVariant(); got.Name != formula.Hub.Name {
		t.Errorf("ResolveVariant: got %q, want hub", got.Name)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("formula:\n  variant: hub\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { changes <- c })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	// An invalid file is skipped; the next valid write is delivered.
	if err := os.WriteFile(path, []byte("formula:\n  variant: metric\n"), 0o600); err != nil {
		t.Fatalf("write invalid config: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("formula:\n  variant: local\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Formula.Variant == "local" {
				cancel()
				if err := <-done; err != nil {
					t.Errorf("Watch returned %v", err)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatch_AtomicReplaceAndSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("formula:\n  variant: hub\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	go func() { _ = Watch(ctx, path, func(c *Config) { changes <- c }) }()
	time.Sleep(100 * time.Millisecond)

	// Other files in the directory do not trigger a reload.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600); err != nil {
		t.Fatalf("write sibling: %v", err)
	}
	select {
	case cfg := <-changes:
		t.Fatalf("unexpected reload: %+v", cfg.Formula)
	case <-time.After(300 * time.Millisecond):
	}

	tmp := filepath.Join(dir, ".config.yaml.tmp")
	if err := os.WriteFile(tmp, []byte("formula:\n  variant: local\n  default_locale: zh\n"), 0o600); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename: %v", err)
	}

	select {
	case cfg := <-changes:
		if cfg.Formula.Variant != "local" || cfg.Formula.DefaultLocale != "zh" {
			t.Errorf("reloaded formula = %+v", cfg.Formula)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload after rename")
	}
}

// loadFromString writes yaml to a temp file and calls Load, failing on error.
func loadFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := loadStringErr(t, content)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	return cfg
}

// loadStringErr writes yaml to a temp file and calls Load, returning any error.
func loadStringErr(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return Load(path)
}
