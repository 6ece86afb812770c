package storage

import (
	"fmt"
	"time"
)

// SearchRun is one recorded search from a game or a strategy comparison.
type SearchRun struct {
	ID            int64
	GameID        string
	Strategy      string
	NodesExplored int
	PathLength    int
	Trapped       bool // No escape route was found
	CreatedAt     time.Time
}

// StrategyStats aggregates the search runs of one strategy.
type StrategyStats struct {
	Strategy      string
	Runs          int
	AvgNodes      float64
	AvgPathLength float64 // Over runs that found a path
	MaxNodes      int
	TrappedCount  int
}

// SaveSearchRun records a search run.
// Returns the ID of the inserted record.
func (s *Store) SaveSearchRun(run SearchRun) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO search_runs (game_id, strategy, nodes_explored, path_length, trapped)
		 VALUES (?, ?, ?, ?, ?)`,
		run.GameID, run.Strategy, run.NodesExplored, run.PathLength, run.Trapped,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save search run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveSearchRuns records several runs in one transaction.
func (s *Store) SaveSearchRuns(runs []SearchRun) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO search_runs (game_id, strategy, nodes_explored, path_length, trapped)
		 VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, run := range runs {
		if _, err := stmt.Exec(run.GameID, run.Strategy, run.NodesExplored, run.PathLength, run.Trapped); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot save search run: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit search runs: %w", err)
	}
	return nil
}

// RecentSearchRuns returns the latest runs for a game, newest first.
func (s *Store) RecentSearchRuns(gameID string, limit int) ([]SearchRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, strategy, nodes_explored, path_length, trapped, created_at
		 FROM search_runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query search runs: %w", err)
	}
	defer rows.Close()

	var runs []SearchRun
	for rows.Next() {
		var r SearchRun
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Strategy, &r.NodesExplored, &r.PathLength, &r.Trapped, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// StrategyStats aggregates search runs per strategy for a game, sorted by strategy name.
func (s *Store) StrategyStats(gameID string) ([]StrategyStats, error) {
	rows, err := s.db.Query(
		`SELECT strategy,
		        COUNT(*),
		        AVG(nodes_explored),
		        COALESCE(AVG(CASE WHEN trapped = 0 THEN path_length END), 0),
		        MAX(nodes_explored),
		        SUM(trapped)
		 FROM search_runs
		 WHERE game_id = ?
		 GROUP BY strategy
		 ORDER BY strategy`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query strategy stats: %w", err)
	}
	defer rows.Close()

	var stats []StrategyStats
	for rows.Next() {
		var st StrategyStats
		if err := rows.Scan(&st.Strategy, &st.Runs, &st.AvgNodes, &st.AvgPathLength, &st.MaxNodes, &st.TrappedCount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
