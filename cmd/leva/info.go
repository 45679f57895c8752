package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/leva-autoplay/internal/api"
	"github.com/vovakirdan/leva-autoplay/internal/board"
	"github.com/vovakirdan/leva-autoplay/internal/render"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show remaining plays, gacha rolls and the current board",
	Long: `Fetch the event state without making any moves.

Examples:
  leva info
  leva info --base-url http://localhost:8080`,
	Args: cobra.NoArgs,
	Run:  runInfo,
}

func runInfo(_ *cobra.Command, _ []string) {
	ctx, stop := signalContext()
	defer stop()

	a, err := setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	resp, err := a.client.Info(ctx)
	a.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching info: %v\n", err)
		os.Exit(1)
	}
	if !resp.OK() {
		fmt.Fprintf(os.Stderr, "Error fetching info: %v\n",
			&api.ServerError{Op: "info", Message: resp.Message})
		os.Exit(1)
	}

	d := resp.Data
	fmt.Printf("Plays left:     %d\n", d.PlayNum)
	fmt.Printf("Gacha rolls:    %d\n", d.GachaNum)
	fmt.Printf("Gacha score:    %d\n", d.GachaScore)
	fmt.Printf("Score today:    %d/%d\n", d.PlayInfo.Score, d.DayCanGetScore)
	fmt.Println()

	t, ongoing := board.Reconstruct(d.PlayInfo.Info, d.PlayInfo.Flag)
	fmt.Println(render.Board(t, render.DefaultTheme()))
	if !ongoing {
		fmt.Println("Board is finished; the next play starts a fresh one.")
	}
}
