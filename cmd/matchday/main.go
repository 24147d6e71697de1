// matchday is a terminal football manager built around a live match
// simulation.
//
// Usage:
//
//	matchday play [club]      - Manage a club: play its next fixture live
//	matchday sim              - Quick-simulate league rounds headlessly
//	matchday table            - Show the league table
//	matchday fixtures [round] - Show a round's fixtures
//	matchday results          - Show recently stored results
//	matchday serve            - Start SSH server for remote play
//	matchday config           - Write the default match config
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible matches
//	--db <path>         - Set database path (default: ~/.matchday/results.db)
//	--config <path>     - Match config YAML
//	--league <path>     - League config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-matchday/internal/config"
	"github.com/vovakirdan/tui-matchday/internal/league"
	"github.com/vovakirdan/tui-matchday/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLeague     string
	flagDifficulty string
	flagLogLevel   string
)

// logger is the root logger, configured from --log-level before any
// command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "matchday",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matchday",
	Short: "Matchday - manage a football club in your terminal",
	Long: `Matchday is a terminal football manager. Pick a club, play its
fixtures live on an ASCII pitch and follow the league table.

Available commands:
  play      - Play your club's next fixture live
  sim       - Quick-simulate rounds without a terminal UI
  table     - Show the league table
  fixtures  - Show a round's fixtures
  results   - Show recently stored results
  serve     - Start SSH server for remote play
  config    - Write the default match config for editing

Examples:
  matchday play
  matchday play "Harbour City" --difficulty hard
  matchday sim --rounds 3
  matchday table
  matchday serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.matchday/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLeague, "league", "", "Path to custom league config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(fixturesCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// seed returns --seed, or a time-based seed when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadMatchConfig loads the match config and applies --difficulty.
func loadMatchConfig() (config.MatchConfig, error) {
	cfg, err := config.LoadMatch(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// openStore opens the results database. Failure is logged and yields nil;
// commands that only play matches keep working without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadLeague builds the league and replays the stored results of its
// season, so the table always reflects committed matches. Generated squad
// members depend only on the season start, so they are the same every run.
func loadLeague(store *storage.Store) (*league.League, config.LeagueConfig, error) {
	lc, err := config.LoadLeague(flagLeague)
	if err != nil {
		return nil, lc, err
	}
	l, err := league.Build(lc, rand.New(rand.NewSource(lc.SeasonStart.Unix())))
	if err != nil {
		return nil, lc, err
	}
	if store == nil {
		return l, lc, nil
	}

	records, err := store.Results(l.Season())
	if err != nil {
		return nil, lc, err
	}
	results := make([]league.Result, 0, len(records))
	for _, r := range records {
		results = append(results, r.LeagueResult())
	}
	if err := l.ApplyResults(results); err != nil {
		logger.Warn("some stored results do not match the schedule", "season", l.Season(), "error", err)
	}
	return l, lc, nil
}
