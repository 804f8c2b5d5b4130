package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMissingToken is returned by RequireDiscord when no bot token is configured.
var ErrMissingToken = errors.New("discord.token is required (set DISCORD_TOKEN)")

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// The Discord token is checked separately by RequireDiscord so that
// one-shot lookups work without credentials.
func (c *Config) Validate() error {
	if err := c.Discord.validate(); err != nil {
		return fmt.Errorf("discord: %w", err)
	}
	if err := c.Scraper.validate(); err != nil {
		return fmt.Errorf("scraper: %w", err)
	}
	return nil
}

// RequireDiscord reports whether the bot can start.
func (c *Config) RequireDiscord() error {
	if strings.TrimSpace(c.Discord.Token) == "" {
		return ErrMissingToken
	}
	return nil
}

func (d *DiscordConfig) validate() error {
	if d.CommandPrefix == "" {
		return fmt.Errorf("command_prefix must not be empty")
	}
	if strings.ContainsAny(d.CommandPrefix, " \t\r\n") {
		return fmt.Errorf("command_prefix must not contain whitespace (got %q)", d.CommandPrefix)
	}
	if d.CommandTimeout <= 0 {
		return fmt.Errorf("command_timeout must be > 0 (got %v)", d.CommandTimeout)
	}
	if d.UserCooldown < 0 {
		return fmt.Errorf("user_cooldown must be >= 0 (got %v)", d.UserCooldown)
	}
	return nil
}

func (s *ScraperConfig) validate() error {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be http or https (got %q)", s.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url must include a host (got %q)", s.BaseURL)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	if s.MinInterval < 0 {
		return fmt.Errorf("min_interval must be >= 0 (got %v)", s.MinInterval)
	}
	return nil
}
