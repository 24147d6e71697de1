package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-matchday/internal/league"
)

var (
	flagResultsLimit int
	flagClub         string
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the league table",
	Long: `Print the standings rebuilt from the stored results of the season.

Examples:
  matchday table
  matchday table --league ./my-league.yaml`,
	Args: cobra.NoArgs,
	Run:  runTable,
}

var fixturesCmd = &cobra.Command{
	Use:   "fixtures [round]",
	Short: "Show a round's fixtures",
	Long: `Print the fixtures of a round with their scores. Without an argument
the current round is shown.

Examples:
  matchday fixtures
  matchday fixtures 12`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFixtures,
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recently stored results",
	Long: `Print the most recently committed matches across all seasons.

Examples:
  matchday results
  matchday results --limit 50
  matchday results --club "Harbour City"`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 20, "Number of results to show")
	resultsCmd.Flags().StringVar(&flagClub, "club", "", "Also show the all-time record of this club")
}

func runTable(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	l, lc, err := loadLeague(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s\n\n", l.Name, l.Season())
	printStandings(l, lc.UserClub)
}

// printStandings prints the table, marking one club.
func printStandings(l *league.League, mark string) {
	fmt.Printf("  %-3s %-24s %3s %3s %3s %3s %4s %4s %4s %4s\n", "#", "Club", "P", "W", "D", "L", "GF", "GA", "GD", "Pts")
	for i, c := range l.Standings() {
		s := c.Stats
		marker := " "
		if c.Name == mark {
			marker = "*"
		}
		fmt.Printf("%s %-3d %-24s %3d %3d %3d %3d %4d %4d %+4d %4d\n",
			marker, i+1, c.Name, s.Played(), s.Wins, s.Draws, s.Losses,
			s.GoalsFor, s.GoalsAgainst, s.GoalDifference(), s.Points)
	}
}

func runFixtures(_ *cobra.Command, args []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	l, _, err := loadLeague(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	round := l.CurrentRound()
	if len(args) == 1 {
		if round, err = strconv.Atoi(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid round %q\n", args[0])
			os.Exit(1)
		}
	}
	if round < 1 || round > l.Rounds() {
		if len(args) == 0 {
			fmt.Println("The season is complete.")
			return
		}
		fmt.Fprintf(os.Stderr, "Error: round must be between 1 and %d\n", l.Rounds())
		os.Exit(1)
	}

	fmt.Printf("%s %s - Round %d of %d\n\n", l.Name, l.Season(), round, l.Rounds())
	for _, f := range l.Round(round) {
		score := "v"
		if f.Played {
			score = f.Score
		}
		fmt.Printf("  %s  %-22s %5s  %s\n", f.Date.Format("Mon Jan 02"), f.Home.Name, score, f.Away.Name)
	}
}

func runResults(_ *cobra.Command, _ []string) {
	store := openStore()
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: results database unavailable")
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.RecentResults(flagResultsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Run 'matchday play' or 'matchday sim' to play some matches!")
		return
	}

	fmt.Printf("  %-16s %-9s %-3s  %-22s %5s  %-22s %s\n", "Played", "Season", "Rd", "Home", "Score", "Away", "")
	for _, r := range results {
		note := ""
		if r.EndReason != "full_time" {
			note = fmt.Sprintf("(ended %d')", r.Minute)
		}
		fmt.Printf("  %-16s %-9s %-3d  %-22s %5s  %-22s %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Season, r.Round, r.Home, r.Score, r.Away, note)
	}

	if flagClub != "" {
		rec, err := store.ClubRecord(flagClub)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving club record: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Printf("%s: P%d W%d D%d L%d GF%d GA%d Pts %d\n",
			rec.Club, rec.Played, rec.Wins, rec.Draws, rec.Losses, rec.GoalsFor, rec.GoalsAgainst, rec.Points())
	}
}
