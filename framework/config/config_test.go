package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/apexqa/bankwright/framework/config"
)

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	// No env set → verify all defaults
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "bankwright"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Target.BaseURL", cfg.Target.BaseURL, "http://localhost:8000"},
		{"Browser.Name", cfg.Browser.Name, "chromium"},
		{"Report.Level", cfg.Report.Level, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !cfg.Browser.Headless {
		t.Error("Browser.Headless should default to true")
	}
	if cfg.Browser.Timeout != 30*time.Second {
		t.Errorf("Browser.Timeout: got %v, want 30s", cfg.Browser.Timeout)
	}
	if cfg.Browser.SlowMo != 0 {
		t.Errorf("Browser.SlowMo: got %v, want 0", cfg.Browser.SlowMo)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "bankwright-ci")
	t.Setenv("APP_ENV", "ci")
	t.Setenv("TARGET_BASE_URL", "https://demo.example.test")
	t.Setenv("BROWSER", "firefox")
	t.Setenv("HEADLESS", "false")
	t.Setenv("BROWSER_SLOWMO_MS", "250")

	cfg := config.Load("testdata/empty.env")

	if cfg.App.Name != "bankwright-ci" {
		t.Errorf("App.Name: got %q", cfg.App.Name)
	}
	if cfg.App.Env != "ci" {
		t.Errorf("App.Env: got %q", cfg.App.Env)
	}
	if cfg.Target.BaseURL != "https://demo.example.test" {
		t.Errorf("Target.BaseURL: got %q", cfg.Target.BaseURL)
	}
	if cfg.Browser.Name != "firefox" {
		t.Errorf("Browser.Name: got %q", cfg.Browser.Name)
	}
	if cfg.Browser.Headless {
		t.Error("Browser.Headless should honour HEADLESS=false")
	}
	if cfg.Browser.SlowMo != 250*time.Millisecond {
		t.Errorf("Browser.SlowMo: got %v, want 250ms", cfg.Browser.SlowMo)
	}
}

func TestLoad_EnvFileValuesApply(t *testing.T) {
	// godotenv only fills keys absent from the environment, and what it sets
	// stays set process-wide. Unset the file's keys going in and let
	// t.Setenv's cleanup restore whatever the process had.
	for _, key := range []string{"APP_ENV", "TARGET_BASE_URL", "HEADLESS"} {
		t.Setenv(key, os.Getenv(key))
		os.Unsetenv(key)
	}

	cfg := config.Load("testdata/ci.env")

	if cfg.App.Env != "ci" {
		t.Errorf("App.Env: got %q, want value from env file", cfg.App.Env)
	}
	if cfg.Target.BaseURL != "http://bank.internal:9090" {
		t.Errorf("Target.BaseURL: got %q", cfg.Target.BaseURL)
	}
}

// ── Raw getters ──────────────────────────────────────────────────────────────

func TestGetters(t *testing.T) {
	t.Setenv("CUSTOM_STR", "hello")
	t.Setenv("CUSTOM_INT", "42")
	t.Setenv("CUSTOM_BOOL", "true")
	t.Setenv("CUSTOM_BAD_INT", "not-a-number")

	if got := config.Get("CUSTOM_STR", "x"); got != "hello" {
		t.Errorf("Get: got %q", got)
	}
	if got := config.Get("CUSTOM_UNSET", "fallback"); got != "fallback" {
		t.Errorf("Get fallback: got %q", got)
	}
	if got := config.GetInt("CUSTOM_INT", 0); got != 42 {
		t.Errorf("GetInt: got %d", got)
	}
	if got := config.GetInt("CUSTOM_BAD_INT", 7); got != 7 {
		t.Errorf("GetInt should fall back on parse failure, got %d", got)
	}
	if got := config.GetBool("CUSTOM_BOOL", false); !got {
		t.Error("GetBool: got false")
	}
}
