package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagRewardsLimit int

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "List gacha rewards recorded in the local ledger",
	Long: `Display the most recent gacha rewards, newest first.

No auth token is needed; only the local ledger is read.

Examples:
  leva rewards
  leva rewards --limit 50`,
	Args: cobra.NoArgs,
	Run:  runRewards,
}

func init() {
	rewardsCmd.Flags().IntVarP(&flagRewardsLimit, "limit", "n", 20, "Number of rewards to show")
}

func runRewards(_ *cobra.Command, _ []string) {
	store, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rewards, err := store.RecentRewards(flagRewardsLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving rewards: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Println("Gacha Rewards")
	fmt.Println()

	if len(rewards) == 0 {
		fmt.Println("No rewards recorded yet.")
		fmt.Println()
		fmt.Println("Run 'leva gacha' to roll for the first one!")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-4s  %s\n", "Date", "Run", "Code", "Reward")
	fmt.Printf("  %-16s  %-8s  %-4s  %s\n", "----", "---", "----", "------")

	for _, r := range rewards {
		code := ""
		if r.IsCode {
			code = "yes"
		}
		run := r.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		fmt.Printf("  %-16s  %-8s  %-4s  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), run, code, r.Name)
	}

	fmt.Println()
	if total, err := store.RewardCount(); err == nil {
		fmt.Printf("Total: %d\n", total)
	}
}
