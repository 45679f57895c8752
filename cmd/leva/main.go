// leva plays Leva's memory puzzle event automatically and spends its gacha
// rolls.
//
// Usage:
//
//	leva                       - Solve one puzzle (and roll gacha if --gacha is set)
//	leva solve                 - Solve puzzles
//	leva gacha                 - Roll the gacha
//	leva info                  - Show remaining plays, rolls and the current board
//	leva rewards               - List rewards recorded in the local ledger
//
// Global flags:
//
//	--auth-token <token>  - Authorization token (else $LEVA_AUTH_TOKEN, config, prompt)
//	--config <path>       - Config file (default: ~/.leva/config.yaml)
//	--verbose             - Debug logging, including the board after every click
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leva-autoplay/internal/core"
)

var (
	// Global flags
	flagAuthToken  string
	flagConfig     string
	flagBaseURL    string
	flagLedgerPath string
	flagNoLedger   bool
	flagMaxRetries int
	flagVerbose    bool

	// Root command flags
	flagPuzzle = core.AttemptsOne
	flagGacha  = core.AttemptsNone
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leva",
	Short: "Solves Leva's Memory Puzzle automatically",
	Long: `leva plays the 4x4 memory-match event for you and can spend the
gacha rolls it earns.

Puzzle and gacha run independently: a failure in one does not stop
the other.

Attempts:
  none  - Skip
  one   - Run once
  all   - Run as many times as the server allows today

Examples:
  leva
  leva --puzzle all --gacha all
  leva --puzzle none --gacha one
  leva info`,
	Args: cobra.NoArgs,
	Run:  runAll,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&flagAuthToken, "auth-token", "a", "", "Authentication token for the event service")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Override the event service address")
	rootCmd.PersistentFlags().StringVar(&flagLedgerPath, "ledger", "", "Path to the reward ledger database")
	rootCmd.PersistentFlags().BoolVar(&flagNoLedger, "no-ledger", false, "Do not record gacha rewards")
	rootCmd.PersistentFlags().IntVar(&flagMaxRetries, "max-retries", -1, "Max consecutive rejected clicks (0 = unlimited, -1 = from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().Var(&flagPuzzle, "puzzle", "Puzzle attempts: none, one or all")
	rootCmd.Flags().Var(&flagGacha, "gacha", "Gacha attempts: none, one or all")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(gachaCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(rewardsCmd)
}

func runAll(cmd *cobra.Command, _ []string) {
	ctx, stop := signalContext()
	defer stop()

	if flagPuzzle == core.AttemptsNone && flagGacha == core.AttemptsNone {
		fmt.Println("Nothing to do: both --puzzle and --gacha are none.")
		return
	}

	a, err := setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	puzzleOK := solvePuzzles(ctx, a, flagPuzzle)
	gachaOK := rollGacha(ctx, a, flagGacha)
	a.Close()

	if !puzzleOK || !gachaOK {
		os.Exit(1)
	}
}
