package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-matchday/internal/config"
)

var flagConfigOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the match config for editing",
	Long: `Write the effective match config (defaults plus any --config overlay and
--difficulty) as YAML. By default it goes to ~/.matchday/configs/match.yaml,
where later runs pick it up.

Examples:
  matchday config
  matchday config --difficulty hard
  matchday config --out ./configs/match.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigOut, "out", "", "Output path (default ~/.matchday/configs/match.yaml)")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadMatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := flagConfigOut
	if out == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot get home directory: %v\n", homeErr)
			os.Exit(1)
		}
		out = filepath.Join(home, ".matchday", "configs", "match.yaml")
	}

	if err := config.WriteMatch(out, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", out)
}
