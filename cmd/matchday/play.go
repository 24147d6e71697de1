package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-matchday/internal/core"
	"github.com/vovakirdan/tui-matchday/internal/league"
	"github.com/vovakirdan/tui-matchday/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [club]",
	Short: "Play your club's next fixture live",
	Long: `Manage a club through the season. Pick a club, watch its next fixture
play out live and steer one of your players. When the match ends the rest
of the round is simulated and the table is shown.

Without a club argument a picker opens on the league's configured club.

Controls:
  Space/P    - Pause/resume
  +/-        - Faster/slower
  WASD       - Move your controlled player
  Right/Left - Settings/live match
  Up/Down    - Navigate settings
  Enter/Esc  - Open/close a settings screen
  Q          - End the match now (the current score stands)

Examples:
  matchday play
  matchday play "Northbridge United"
  matchday play --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := loadMatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	l, lc, err := loadLeague(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	rt.Seed = seed()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	day := &tui.Matchday{
		League: l,
		Config: cfg,
		Store:  store,
		Seed:   rt.Seed,
		Logger: logger,
	}

	current := lc.UserClub
	var direct *league.Club
	if len(args) == 1 {
		if direct, err = l.ClubByName(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		current = direct.Name
	}

	for {
		club := direct
		direct = nil

		if club == nil {
			pick, pickErr := tui.RunClubPicker(l, current, rt)
			if pickErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
				os.Exit(1)
			}
			if pick.Quit {
				return
			}
			if pick.WantsTable {
				goBack, tableErr := tui.RunLeagueTable(l, current, rt)
				if tableErr != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", tableErr)
				}
				if goBack {
					continue
				}
				return
			}
			club = pick.Club
		}
		current = club.Name

		session, fixture, prepErr := day.Prepare(club)
		if prepErr != nil {
			fmt.Fprintf(os.Stderr, "%v\n", prepErr)
			continue
		}

		outcome, ended, runErr := tui.RunMatch(session, rt)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
			os.Exit(1)
		}
		if !ended {
			return
		}
		logger.Info("match finished", "home", outcome.Home, "away", outcome.Away, "score", outcome.Score(), "reason", outcome.Reason)

		if _, roundErr := day.FinishRound(context.Background(), fixture); roundErr != nil {
			logger.Error("could not finish round", "round", fixture.Round, "error", roundErr)
		}

		goBack, tableErr := tui.RunLeagueTable(l, current, rt)
		if tableErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", tableErr)
		}
		if !goBack {
			return
		}
	}
}
