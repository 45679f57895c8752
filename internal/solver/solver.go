// Package solver plays the memory puzzle against the event service.
//
// A play starts from the server's board (resuming it when it is still in
// progress, refreshing it otherwise) and clicks one cell at a time until all
// cells are matched. Rejected clicks are retried after a pause.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leva-autoplay/internal/api"
	"github.com/vovakirdan/leva-autoplay/internal/board"
	"github.com/vovakirdan/leva-autoplay/internal/core"
	"github.com/vovakirdan/leva-autoplay/internal/render"
)

var (
	// ErrNoPlaysLeft is returned when the server reports no plays for today.
	ErrNoPlaysLeft = errors.New("solver: no available plays left for today")

	// ErrNoValidMove means the tracker reached a state with nothing to click.
	ErrNoValidMove = errors.New("solver: no valid index to click")

	// ErrRetriesExhausted is returned when Options.MaxClickRetries rejected
	// clicks happen in a row.
	ErrRetriesExhausted = errors.New("solver: too many rejected clicks")
)

// Game is the part of the event service the solver needs.
type Game interface {
	Info(ctx context.Context) (api.Envelope[api.InfoData], error)
	Refresh(ctx context.Context) (api.Envelope[api.RefreshData], error)
	Click(ctx context.Context, index int) (api.Envelope[api.ClickData], error)
}

// Options tunes pacing and retries.
type Options struct {
	ClickDelay time.Duration // After every accepted click
	RetryDelay time.Duration // After a rejected click
	PlayDelay  time.Duration // Between plays

	// MaxClickRetries caps consecutive rejected clicks; 0 means no cap.
	MaxClickRetries int

	Logger *log.Logger
}

// DefaultOptions returns the standard pacing.
func DefaultOptions() Options {
	return Options{
		ClickDelay: 500 * time.Millisecond,
		RetryDelay: time.Second,
		PlayDelay:  500 * time.Millisecond,
	}
}

// Report summarises a Solve call.
type Report struct {
	Plays    int // Completed plays
	Resumed  int // Plays that continued a board already in progress
	Clicks   int // Accepted clicks
	Rejected int // Rejected clicks that were retried
}

// Solver drives plays through a Game.
type Solver struct {
	game   Game
	opts   Options
	logger *log.Logger
}

// New creates a solver.
func New(game Game, opts Options) *Solver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Solver{game: game, opts: opts, logger: logger}
}

// Solve plays once or as many times as allowed, depending on attempts.
// AttemptsNone returns immediately without contacting the server.
func (s *Solver) Solve(ctx context.Context, attempts core.Attempts) (Report, error) {
	var report Report
	if attempts == core.AttemptsNone {
		s.logger.Debug("no puzzle attempts requested")
		return report, nil
	}

	info, err := s.fetchInfo(ctx)
	if err != nil {
		return report, err
	}
	if info.PlayNum < 1 {
		return report, ErrNoPlaysLeft
	}

	plays := attempts.Count(info.PlayNum)
	s.logger.Info("plays available", "available", info.PlayNum, "playing", plays)

	for n := 1; n <= plays; n++ {
		if n > 1 {
			if err := core.Sleep(ctx, s.opts.PlayDelay); err != nil {
				return report, err
			}
			if info, err = s.fetchInfo(ctx); err != nil {
				return report, err
			}
		}

		s.logger.Info("starting play", "play", n, "of", plays)
		if err := s.PlayOnce(ctx, info, &report); err != nil {
			return report, fmt.Errorf("play %d: %w", n, err)
		}
		report.Plays++
	}

	return report, nil
}

// PlayOnce plays a single board to completion, starting from info.
// Counters are added to report when it is non-nil.
func (s *Solver) PlayOnce(ctx context.Context, info api.InfoData, report *Report) error {
	if report == nil {
		report = &Report{}
	}

	tracker, ongoing := board.Reconstruct(info.PlayInfo.Info, info.PlayInfo.Flag)
	if ongoing {
		report.Resumed++
		s.logger.Info("resuming ongoing game", "matched", tracker.MatchedCount())
		s.logBoard(tracker)
	} else {
		s.logger.Info("no ongoing game found, starting a new game")
		tracker.Reset()
		env, err := s.game.Refresh(ctx)
		if err != nil {
			return err
		}
		if !env.OK() {
			return &api.ServerError{Op: "refresh", Status: 200, Message: env.Message}
		}
	}

	rejected := 0
	for !tracker.Complete() {
		index, ok := board.NextMove(tracker)
		if !ok {
			s.logBoard(tracker)
			return ErrNoValidMove
		}
		s.logger.Debug("clicking", "index", index)

		env, err := s.game.Click(ctx, index)
		if err != nil {
			return err
		}

		card := env.Data.CardID
		if !env.OK() || card == "" {
			rejected++
			report.Rejected++
			s.logger.Warn("click rejected, retrying", "index", index, "message", env.Message, "card", card, "attempt", rejected)
			if s.opts.MaxClickRetries > 0 && rejected >= s.opts.MaxClickRetries {
				return fmt.Errorf("%w: %d in a row, last message %q", ErrRetriesExhausted, rejected, env.Message)
			}
			if err := core.Sleep(ctx, s.opts.RetryDelay); err != nil {
				return err
			}
			continue
		}
		rejected = 0
		report.Clicks++

		outcome, err := tracker.Reveal(index, card)
		if err != nil {
			return err
		}
		s.logger.Debug("revealed", "index", index, "card", card, "outcome", outcome)
		s.logBoard(tracker)

		if err := core.Sleep(ctx, s.opts.ClickDelay); err != nil {
			return err
		}
	}

	s.logger.Info("puzzle solved")
	return nil
}

func (s *Solver) fetchInfo(ctx context.Context) (api.InfoData, error) {
	env, err := s.game.Info(ctx)
	if err != nil {
		return api.InfoData{}, err
	}
	if !env.OK() {
		return api.InfoData{}, &api.ServerError{Op: "info", Status: 200, Message: env.Message}
	}
	return env.Data, nil
}

func (s *Solver) logBoard(t *board.Tracker) {
	if s.logger.GetLevel() > log.DebugLevel {
		return
	}
	s.logger.Debug("board\n" + render.Board(t, render.DefaultTheme()))
}
