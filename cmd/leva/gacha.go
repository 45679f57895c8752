package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leva-autoplay/internal/core"
	"github.com/vovakirdan/leva-autoplay/internal/gacha"
)

var flagGachaAttempts = core.AttemptsOne

var gachaCmd = &cobra.Command{
	Use:   "gacha",
	Short: "Roll the event gacha",
	Long: `Spend gacha rolls earned from the puzzle.

Each reward is printed and, unless --no-ledger is set, recorded in the
local reward ledger (see 'leva rewards').

Examples:
  leva gacha
  leva gacha --attempts all`,
	Args: cobra.NoArgs,
	Run:  runGacha,
}

func init() {
	gachaCmd.Flags().Var(&flagGachaAttempts, "attempts", "Gacha attempts: one or all")
}

func runGacha(_ *cobra.Command, _ []string) {
	ctx, stop := signalContext()
	defer stop()

	a, err := setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ok := rollGacha(ctx, a, flagGachaAttempts)
	a.Close()
	if !ok {
		os.Exit(1)
	}
}

// rollGacha runs the roller and prints every reward. It returns false on
// failure.
func rollGacha(ctx context.Context, a *app, attempts core.Attempts) bool {
	if attempts == core.AttemptsNone {
		return true
	}

	opts := gacha.Options{
		RollDelay: a.cfg.Timing.RollDelay.Std(),
		Logger:    a.logger,
	}
	if a.ledger != nil {
		opts.Recorder = a.ledger.Recorder(a.runID)
	}

	rewards, err := gacha.New(a.client, opts).Roll(ctx, attempts)
	for _, r := range rewards {
		fmt.Printf("Gacha Result: %s\n", r.Name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rolling gacha: %v\n", err)
		return false
	}

	fmt.Println("Gacha rolled successfully!")
	return true
}
