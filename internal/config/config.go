// Package config provides YAML-based configuration loading for the
// autoplayer: the auth token, the service address, pacing delays and the
// reward ledger location.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains all configuration for a run.
type Config struct {
	AuthToken string       `yaml:"auth_token"`
	BaseURL   string       `yaml:"base_url"`
	Timing    TimingConfig `yaml:"timing"`
	Retry     RetryConfig  `yaml:"retry"`
	Ledger    LedgerConfig `yaml:"ledger"`
}

// TimingConfig defines the fixed pauses used to pace requests.
type TimingConfig struct {
	ClickDelay Duration `yaml:"click_delay"` // After every click
	RetryDelay Duration `yaml:"retry_delay"` // After a rejected click
	PlayDelay  Duration `yaml:"play_delay"`  // Between plays in "all" mode
	RollDelay  Duration `yaml:"roll_delay"`  // Between gacha rolls in "all" mode
}

// RetryConfig bounds retries of rejected clicks.
type RetryConfig struct {
	MaxClickRetries int `yaml:"max_click_retries"` // 0 = retry until the server recovers
}

// LedgerConfig controls the local gacha reward ledger.
type LedgerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Duration is a time.Duration written as a Go duration string ("500ms").
// Bare integers are read as milliseconds.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var ms int64
	if err := value.Decode(&ms); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("config: invalid duration at line %d", value.Line)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Validate reports the first nonsensical value in cfg.
func (c Config) Validate() error {
	t := c.Timing
	for name, d := range map[string]Duration{
		"click_delay": t.ClickDelay,
		"retry_delay": t.RetryDelay,
		"play_delay":  t.PlayDelay,
		"roll_delay":  t.RollDelay,
	} {
		if d < 0 {
			return fmt.Errorf("config: timing.%s must not be negative", name)
		}
	}
	if c.Retry.MaxClickRetries < 0 {
		return fmt.Errorf("config: retry.max_click_retries must not be negative")
	}
	if c.Ledger.Enabled && c.Ledger.Path == "" {
		return fmt.Errorf("config: ledger.path is required when the ledger is enabled")
	}
	return nil
}
