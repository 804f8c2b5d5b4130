package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// chdirTemp moves the test into an empty working directory so the default
// config paths do not resolve.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	return dir
}

const validYAML = `
discord:
  token: "yaml-token"
  command_prefix: "?"
  command_timeout: "15s"
  user_cooldown: "5s"

scraper:
  base_url: "http://localhost:9999"
  user_agent: "test-agent"
  timeout: "3s"
  min_interval: "250ms"

ops:
  addr: ":9090"
  shutdown_timeout: "2s"

log:
  level: "debug"
  format: "text"
`

func validConfig() *Config {
	return &Config{
		Discord: DiscordConfig{
			Token:          "token",
			CommandPrefix:  "!",
			CommandTimeout: 30 * time.Second,
			UserCooldown:   2 * time.Second,
		},
		Scraper: ScraperConfig{
			BaseURL:     "https://www.dictionary.com",
			UserAgent:   "agent",
			Timeout:     10 * time.Second,
			MinInterval: time.Second,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Discord
	if cfg.Discord.Token != "yaml-token" {
		t.Errorf("discord.token = %q, want %q", cfg.Discord.Token, "yaml-token")
	}
	if cfg.Discord.CommandPrefix != "?" {
		t.Errorf("discord.command_prefix = %q, want %q", cfg.Discord.CommandPrefix, "?")
	}
	if cfg.Discord.CommandTimeout != 15*time.Second {
		t.Errorf("discord.command_timeout = %v, want 15s", cfg.Discord.CommandTimeout)
	}
	if cfg.Discord.UserCooldown != 5*time.Second {
		t.Errorf("discord.user_cooldown = %v, want 5s", cfg.Discord.UserCooldown)
	}

	// Scraper
	if cfg.Scraper.BaseURL != "http://localhost:9999" {
		t.Errorf("scraper.base_url = %q", cfg.Scraper.BaseURL)
	}
	if cfg.Scraper.UserAgent != "test-agent" {
		t.Errorf("scraper.user_agent = %q", cfg.Scraper.UserAgent)
	}
	if cfg.Scraper.Timeout != 3*time.Second {
		t.Errorf("scraper.timeout = %v, want 3s", cfg.Scraper.Timeout)
	}
	if cfg.Scraper.MinInterval != 250*time.Millisecond {
		t.Errorf("scraper.min_interval = %v, want 250ms", cfg.Scraper.MinInterval)
	}

	// Ops
	if !cfg.Ops.Enabled() || cfg.Ops.Addr != ":9090" {
		t.Errorf("ops.addr = %q, want %q", cfg.Ops.Addr, ":9090")
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("COMMAND_PREFIX", "$")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Discord.CommandPrefix != "$" {
		t.Errorf("discord.command_prefix = %q, want %q (ENV override)", cfg.Discord.CommandPrefix, "$")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Discord.CommandPrefix != "!" {
		t.Errorf("discord.command_prefix = %q, want %q (default)", cfg.Discord.CommandPrefix, "!")
	}
	if cfg.Scraper.BaseURL != "https://www.dictionary.com" {
		t.Errorf("scraper.base_url = %q (default)", cfg.Scraper.BaseURL)
	}
	if !strings.HasPrefix(cfg.Scraper.UserAgent, "Mozilla/5.0") {
		t.Errorf("scraper.user_agent = %q, want a browser user agent", cfg.Scraper.UserAgent)
	}
	if cfg.Scraper.MinInterval != time.Second {
		t.Errorf("scraper.min_interval = %v, want 1s (default)", cfg.Scraper.MinInterval)
	}
	if cfg.Scraper.Timeout != 10*time.Second {
		t.Errorf("scraper.timeout = %v, want 10s (default)", cfg.Scraper.Timeout)
	}
	if cfg.Ops.Enabled() {
		t.Error("ops server should be disabled by default")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DISCORD_TOKEN", "env-token")
	t.Setenv("SCRAPER_MIN_INTERVAL", "0s")
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Discord.Token != "env-token" {
		t.Errorf("discord.token = %q, want %q", cfg.Discord.Token, "env-token")
	}
	if cfg.Scraper.MinInterval != 0 {
		t.Errorf("scraper.min_interval = %v, want 0", cfg.Scraper.MinInterval)
	}
	if err := cfg.RequireDiscord(); err != nil {
		t.Errorf("RequireDiscord() = %v, want nil", err)
	}
}

func TestLoad_DotEnvFallback(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	// Registered so the values written by the dotenv file are restored.
	t.Setenv("DISCORD_TOKEN", "placeholder")
	t.Setenv("COMMAND_PREFIX", "!")
	dir := chdirTemp(t)
	writeFile(t, dir, ".env", "DISCORD_TOKEN=dotenv-token\nCOMMAND_PREFIX=>\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Discord.Token != "dotenv-token" {
		t.Errorf("discord.token = %q, want %q", cfg.Discord.Token, "dotenv-token")
	}
	if cfg.Discord.CommandPrefix != ">" {
		t.Errorf("discord.command_prefix = %q, want %q", cfg.Discord.CommandPrefix, ">")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "scraper:\n  base_url: \"ftp://example.com\"\n")
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error for ftp base url")
	}
	if !strings.Contains(err.Error(), "scraper") {
		t.Errorf("error %q should mention scraper", err)
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "empty prefix", mutate: func(c *Config) { c.Discord.CommandPrefix = "" }},
		{name: "prefix with space", mutate: func(c *Config) { c.Discord.CommandPrefix = "! " }},
		{name: "zero command timeout", mutate: func(c *Config) { c.Discord.CommandTimeout = 0 }},
		{name: "negative cooldown", mutate: func(c *Config) { c.Discord.UserCooldown = -time.Second }},
		{name: "base url without scheme", mutate: func(c *Config) { c.Scraper.BaseURL = "www.dictionary.com" }},
		{name: "base url without host", mutate: func(c *Config) { c.Scraper.BaseURL = "https://" }},
		{name: "base url unparsable", mutate: func(c *Config) { c.Scraper.BaseURL = "http://[::1" }},
		{name: "zero scraper timeout", mutate: func(c *Config) { c.Scraper.Timeout = 0 }},
		{name: "negative min interval", mutate: func(c *Config) { c.Scraper.MinInterval = -time.Millisecond }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_ZeroCooldownAndIntervalAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Discord.UserCooldown = 0
	cfg.Scraper.MinInterval = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireDiscord(t *testing.T) {
	cfg := validConfig()
	if err := cfg.RequireDiscord(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Discord.Token = "  "
	if err := cfg.RequireDiscord(); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("RequireDiscord() = %v, want ErrMissingToken", err)
	}
}
