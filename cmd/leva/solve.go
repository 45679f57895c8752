package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leva-autoplay/internal/core"
	"github.com/vovakirdan/leva-autoplay/internal/solver"
)

var flagSolveAttempts = core.AttemptsOne

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the memory puzzle",
	Long: `Play the memory puzzle until every pair is matched.

A board left half-played is resumed; a finished board is refreshed
first. Rejected clicks are retried after a short pause (see
--max-retries).

Examples:
  leva solve
  leva solve --attempts all
  leva solve -v`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().Var(&flagSolveAttempts, "attempts", "Puzzle attempts: one or all")
}

func runSolve(_ *cobra.Command, _ []string) {
	ctx, stop := signalContext()
	defer stop()

	a, err := setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ok := solvePuzzles(ctx, a, flagSolveAttempts)
	a.Close()
	if !ok {
		os.Exit(1)
	}
}

// solvePuzzles runs the solver and reports the outcome. It returns false on
// failure.
func solvePuzzles(ctx context.Context, a *app, attempts core.Attempts) bool {
	if attempts == core.AttemptsNone {
		return true
	}

	t := a.cfg.Timing
	s := solver.New(a.client, solver.Options{
		ClickDelay:      t.ClickDelay.Std(),
		RetryDelay:      t.RetryDelay.Std(),
		PlayDelay:       t.PlayDelay.Std(),
		MaxClickRetries: a.cfg.Retry.MaxClickRetries,
		Logger:          a.logger,
	})

	report, err := s.Solve(ctx, attempts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error solving puzzle: %v\n", err)
		return false
	}

	fmt.Printf("Puzzle solved successfully! (%d play(s), %d clicks, %d retried)\n",
		report.Plays, report.Clicks, report.Rejected)
	return true
}
