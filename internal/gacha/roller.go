// Package gacha spends the event's lottery rolls.
package gacha

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leva-autoplay/internal/api"
	"github.com/vovakirdan/leva-autoplay/internal/core"
)

// ErrNoRollsLeft is returned when the server reports no rolls available.
var ErrNoRollsLeft = errors.New("gacha: no rolls left")

// Service is the part of the event service the roller needs.
type Service interface {
	Info(ctx context.Context) (api.Envelope[api.InfoData], error)
	Gacha(ctx context.Context) (api.Envelope[api.GachaData], error)
}

// Recorder stores rolled rewards.
type Recorder interface {
	RecordReward(ctx context.Context, r api.GachaData) error
}

// Options tunes the roller.
type Options struct {
	RollDelay time.Duration // Between rolls
	Recorder  Recorder      // Optional
	Logger    *log.Logger
}

// Roller performs gacha rolls.
type Roller struct {
	svc    Service
	opts   Options
	logger *log.Logger
}

// New creates a roller.
func New(svc Service, opts Options) *Roller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Roller{svc: svc, opts: opts, logger: logger}
}

// Roll spends one roll or every available roll, depending on attempts, and
// returns the rewards obtained. A rejected roll stops the sequence; rewards
// already rolled are still returned.
func (r *Roller) Roll(ctx context.Context, attempts core.Attempts) ([]api.GachaData, error) {
	if attempts == core.AttemptsNone {
		r.logger.Debug("no gacha attempts requested")
		return nil, nil
	}

	env, err := r.svc.Info(ctx)
	if err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, &api.ServerError{Op: "info", Status: 200, Message: env.Message}
	}
	available := env.Data.GachaNum
	if available < 1 {
		return nil, ErrNoRollsLeft
	}

	rolls := attempts.Count(available)
	r.logger.Info("rolls available", "available", available, "rolling", rolls)

	rewards := make([]api.GachaData, 0, rolls)
	for n := 1; n <= rolls; n++ {
		if n > 1 {
			if err := core.Sleep(ctx, r.opts.RollDelay); err != nil {
				return rewards, err
			}
		}

		reward, err := r.rollOnce(ctx)
		if err != nil {
			return rewards, err
		}
		rewards = append(rewards, reward)
		r.logger.Info("gacha result", "roll", n, "name", reward.Name, "record", reward.RecordID)

		if r.opts.Recorder != nil {
			if err := r.opts.Recorder.RecordReward(ctx, reward); err != nil {
				r.logger.Warn("could not record reward", "name", reward.Name, "error", err)
			}
		}
	}

	return rewards, nil
}

func (r *Roller) rollOnce(ctx context.Context) (api.GachaData, error) {
	r.logger.Debug("rolling gacha")
	env, err := r.svc.Gacha(ctx)
	if err != nil {
		return api.GachaData{}, err
	}
	if !env.OK() {
		return api.GachaData{}, &api.ServerError{Op: "gacha", Status: 200, Message: env.Message}
	}
	return env.Data, nil
}
