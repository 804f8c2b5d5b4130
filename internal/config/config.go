package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Discord DiscordConfig `yaml:"discord"`
	Scraper ScraperConfig `yaml:"scraper"`
	Ops     OpsConfig     `yaml:"ops"`
	Log     LogConfig     `yaml:"log"`
}

// DiscordConfig holds bot credentials and command settings.
type DiscordConfig struct {
	Token          string        `yaml:"token"           env:"DISCORD_TOKEN"`
	CommandPrefix  string        `yaml:"command_prefix"  env:"COMMAND_PREFIX"          env-default:"!"`
	CommandTimeout time.Duration `yaml:"command_timeout" env:"DISCORD_COMMAND_TIMEOUT" env-default:"30s"`
	UserCooldown   time.Duration `yaml:"user_cooldown"   env:"DISCORD_USER_COOLDOWN"   env-default:"2s"`
}

// ScraperConfig holds settings for the remote dictionary source.
type ScraperConfig struct {
	BaseURL     string        `yaml:"base_url"     env:"DICTIONARY_BASE_URL"  env-default:"https://www.dictionary.com"`
	UserAgent   string        `yaml:"user_agent"   env:"SCRAPER_USER_AGENT"   env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	Timeout     time.Duration `yaml:"timeout"      env:"SCRAPER_TIMEOUT"      env-default:"10s"`
	MinInterval time.Duration `yaml:"min_interval" env:"SCRAPER_MIN_INTERVAL" env-default:"1s"`
}

// OpsConfig holds the operational HTTP server settings.
// An empty Addr disables the server.
type OpsConfig struct {
	Addr            string        `yaml:"addr"             env:"OPS_ADDR"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"OPS_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Enabled reports whether the ops server should be started.
func (c OpsConfig) Enabled() bool {
	return c.Addr != ""
}
