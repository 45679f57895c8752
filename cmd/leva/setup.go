package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/leva-autoplay/internal/api"
	"github.com/vovakirdan/leva-autoplay/internal/auth"
	"github.com/vovakirdan/leva-autoplay/internal/config"
	"github.com/vovakirdan/leva-autoplay/internal/storage"
)

// app bundles what every command needs for one run.
type app struct {
	cfg    config.Config
	logger *log.Logger
	client *api.Client
	ledger *storage.Store // nil when disabled or unavailable
	runID  string
}

// Close releases the ledger.
func (a *app) Close() {
	if a.ledger != nil {
		a.ledger.Close()
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "leva",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", src)

	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagLedgerPath != "" {
		cfg.Ledger.Path = flagLedgerPath
	}
	if flagNoLedger {
		cfg.Ledger.Enabled = false
	}
	if flagMaxRetries >= 0 {
		cfg.Retry.MaxClickRetries = flagMaxRetries
	}
	return cfg, cfg.Validate()
}

// setup loads config, resolves the token and builds the client.
// The token is resolved before any request is made.
func setup(ctx context.Context) (*app, error) {
	runID := uuid.NewString()
	logger := newLogger().With("run", runID[:8])

	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}

	tokens := auth.Chain{
		auth.Static(flagAuthToken),
		auth.Env(auth.EnvToken),
		auth.Static(cfg.AuthToken),
		auth.NewPrompt(),
	}
	token, err := tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.BaseURL,
		Token:   token,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, client: client, runID: runID}

	if cfg.Ledger.Enabled {
		store, err := storage.Open(cfg.Ledger.Path)
		if err != nil {
			logger.Warn("could not open reward ledger", "error", err)
		} else {
			a.ledger = store
		}
	}

	return a, nil
}

// openLedger opens the ledger for read-only commands.
func openLedger() (*storage.Store, error) {
	logger := newLogger()
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(cfg.Ledger.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open reward ledger %s: %w", cfg.Ledger.Path, err)
	}
	return store, nil
}
