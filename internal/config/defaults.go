package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/leva-autoplay/internal/api"
)

//go:embed defaults/leva.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL: api.DefaultBaseURL,
		Timing: TimingConfig{
			ClickDelay: Duration(500 * time.Millisecond),
			RetryDelay: Duration(time.Second),
			PlayDelay:  Duration(500 * time.Millisecond),
			RollDelay:  Duration(500 * time.Millisecond),
		},
		Retry: RetryConfig{
			MaxClickRetries: 0,
		},
		Ledger: LedgerConfig{
			Enabled: true,
			Path:    "~/.leva/rewards.db",
		},
	}
}
