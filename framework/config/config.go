// Package config loads the framework configuration from .env files and
// environment variables. The loaded *Config is registered in the container
// under "IConfig" and treated as read-only from then on.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct for a suite run.
type Config struct {
	App     AppConfig
	Target  TargetConfig
	Browser BrowserConfig
	Report  ReportConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | ci | production
	Debug bool
	Port  string // port the bundled demo bank listens on
}

// TargetConfig identifies the application under test.
type TargetConfig struct {
	BaseURL string
}

type BrowserConfig struct {
	Name     string // chromium | firefox | webkit
	Headless bool
	SlowMo   time.Duration // artificial delay between driver actions
	Timeout  time.Duration // default navigation/assertion timeout
}

type ReportConfig struct {
	Level string // debug | info | warn | error
}

// Load reads .env (if present) and populates a Config from environment
// variables. Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist on CI, where everything comes from env
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "bankwright"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			Port:  env("APP_PORT", "8000"),
		},
		Target: TargetConfig{
			BaseURL: env("TARGET_BASE_URL", "http://localhost:8000"),
		},
		Browser: BrowserConfig{
			Name:     env("BROWSER", "chromium"),
			Headless: envBool("HEADLESS", true),
			SlowMo:   envMillis("BROWSER_SLOWMO_MS", 0),
			Timeout:  envMillis("BROWSER_TIMEOUT_MS", 30_000),
		},
		Report: ReportConfig{
			Level: env("REPORT_LEVEL", "info"),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envMillis(key string, fallbackMs int) time.Duration {
	return time.Duration(GetInt(key, fallbackMs)) * time.Millisecond
}
