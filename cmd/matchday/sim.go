package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-matchday/internal/match"
)

var flagRounds int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Quick-simulate league rounds",
	Long: `Simulate the next rounds of the season without a terminal UI. Every
match runs the full live engine with no wall-clock delay; results are
stored like played matches.

Examples:
  matchday sim
  matchday sim --rounds 5
  matchday sim --rounds 0      # rest of the season
  matchday sim --seed 7 --db ./test.db`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRounds, "rounds", 1, "Number of rounds to simulate (0 = rest of the season)")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadMatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	l, _, err := loadLeague(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	base := seed()
	played := 0
	for round := l.CurrentRound(); round > 0; round = l.CurrentRound() {
		if flagRounds > 0 && played == flagRounds {
			break
		}

		var opts []match.Option
		if store != nil {
			opts = append(opts, match.AlsoCommit(store.Committer(l.Season(), round)))
		}
		outcomes, simErr := match.PlayRound(ctx, l, round, cfg, base, nil, logger, opts...)
		if simErr != nil {
			fmt.Fprintf(os.Stderr, "Error simulating round %d: %v\n", round, simErr)
			os.Exit(1)
		}

		fmt.Printf("Round %d\n", round)
		for _, o := range outcomes {
			fmt.Printf("  %-22s %5s  %s\n", o.Home, o.Score(), o.Away)
		}
		fmt.Println()
		played++
	}

	if played == 0 {
		fmt.Println("The season is complete.")
		return
	}
	printStandings(l, "")
}
