// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-matchday/internal/league"
	"github.com/vovakirdan/tui-matchday/internal/match"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultRecord is one committed match.
type ResultRecord struct {
	ID        int64
	MatchID   string
	Season    string
	Round     int
	Home      string
	Away      string
	HomeGoals int
	AwayGoals int
	Score     string
	EndReason string // "full_time" or "quit"
	Minute    int
	CreatedAt time.Time
}

// LeagueResult converts the record into the form the league replays.
func (r ResultRecord) LeagueResult() league.Result {
	return league.Result{
		Round:     r.Round,
		Home:      r.Home,
		Away:      r.Away,
		HomeGoals: r.HomeGoals,
		AwayGoals: r.AwayGoals,
	}
}

// ClubRecord aggregates a club's stored results.
type ClubRecord struct {
	Club         string
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// Points applies the league scoring rule to the record.
func (c ClubRecord) Points() int {
	return c.Wins*league.PointsWin + c.Draws*league.PointsDraw
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			season TEXT NOT NULL,
			round INTEGER NOT NULL,
			home TEXT NOT NULL,
			away TEXT NOT NULL,
			home_goals INTEGER NOT NULL DEFAULT 0,
			away_goals INTEGER NOT NULL DEFAULT 0,
			score TEXT NOT NULL,
			end_reason TEXT NOT NULL,
			minute INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_season ON results(season, round);
		CREATE INDEX IF NOT EXISTS idx_results_home ON results(home);
		CREATE INDEX IF NOT EXISTS idx_results_away ON results(away);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a committed match.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r ResultRecord) (int64, error) {
	if r.Score == "" {
		r.Score = league.FormatScore(r.HomeGoals, r.AwayGoals)
	}
	res, err := s.db.Exec(
		`INSERT INTO results
		 (match_id, season, round, home, away, home_goals, away_goals, score, end_reason, minute)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID,
		r.Season,
		r.Round,
		r.Home,
		r.Away,
		r.HomeGoals,
		r.AwayGoals,
		r.Score,
		r.EndReason,
		r.Minute,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, match_id, season, round, home, away,
		home_goals, away_goals, score, end_reason, minute, created_at`

// Results returns every result of a season in round order.
func (s *Store) Results(season string) ([]ResultRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE season = ?
		 ORDER BY round, id`,
		season,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// RecentResults returns the most recently committed results across seasons.
func (s *Store) RecentResults(limit int) ([]ResultRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent results: %w", err)
	}
	return scanResults(rows)
}

// ResultByMatchID retrieves a result by its match ID.
// Returns nil when no such match was committed.
func (s *Store) ResultByMatchID(matchID string) (*ResultRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE match_id = ?`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	results, err := scanResults(rows)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return &results[0], nil
}

// ClubRecord aggregates every stored result involving the club.
func (s *Store) ClubRecord(club string) (*ClubRecord, error) {
	rec := &ClubRecord{Club: club}
	err := s.db.QueryRow(
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN (home = ?1 AND home_goals > away_goals) OR (away = ?1 AND away_goals > home_goals) THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN home_goals = away_goals THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN home = ?1 THEN home_goals ELSE away_goals END), 0),
			COALESCE(SUM(CASE WHEN home = ?1 THEN away_goals ELSE home_goals END), 0)
		 FROM results
		 WHERE home = ?1 OR away = ?1`,
		club,
	).Scan(&rec.Played, &rec.Wins, &rec.Draws, &rec.GoalsFor, &rec.GoalsAgainst)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get club record: %w", err)
	}
	rec.Losses = rec.Played - rec.Wins - rec.Draws
	return rec, nil
}

// ClearSeason deletes every result of a season.
func (s *Store) ClearSeason(season string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE season = ?", season)
	if err != nil {
		return fmt.Errorf("storage: cannot clear season: %w", err)
	}
	return nil
}

// Committer returns a match committer that stores the outcome under the
// given season and round.
func (s *Store) Committer(season string, round int) match.Committer {
	return match.CommitFunc(func(o match.Outcome) error {
		_, err := s.SaveResult(ResultRecord{
			MatchID:   o.MatchID.String(),
			Season:    season,
			Round:     round,
			Home:      o.Home,
			Away:      o.Away,
			HomeGoals: o.HomeGoals,
			AwayGoals: o.AwayGoals,
			Score:     o.Score(),
			EndReason: string(o.Reason),
			Minute:    o.Minute,
		})
		return err
	})
}

func scanResults(rows *sql.Rows) ([]ResultRecord, error) {
	defer rows.Close()

	var results []ResultRecord
	for rows.Next() {
		var r ResultRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.MatchID,
			&r.Season,
			&r.Round,
			&r.Home,
			&r.Away,
			&r.HomeGoals,
			&r.AwayGoals,
			&r.Score,
			&r.EndReason,
			&r.Minute,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime handles both driver-decoded times and raw DATETIME strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
