package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// openTestStore opens a fresh database in a temporary directory.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// win builds a score entry against the BFS cat.
func win(gameID string, score, moves int) ScoreEntry {
	return ScoreEntry{GameID: gameID, Score: score, Moves: moves, Strategy: "bfs"}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore(win("hexcat", 42, 3))
	store.Close()

	// Migrations must not run twice or drop existing rows
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	var version int
	if err := store.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("reading user_version: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("Expected schema version %d, got %d", len(migrations), version)
	}

	high, err := store.HighScore("hexcat")
	if err != nil || high != 42 {
		t.Errorf("HighScore() = %d, %v; expected 42", high, err)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	entries := []ScoreEntry{
		win("hexcat", 100, 21),
		win("hexcat", 50, 71),
		{GameID: "hexcat", Score: 200, Moves: 12, Strategy: "astar"},
		win("hexcat", 100, 21),
		win("hexcat_mini", 500, 2),
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		name     string
		gameID   string
		limit    int
		expected []int
	}{
		{"all", "hexcat", 10, []int{200, 100, 100, 50}},
		{"limited", "hexcat", 2, []int{200, 100}},
		{"default limit", "hexcat", 0, []int{200, 100, 100, 50}},
		{"other board", "hexcat_mini", 10, []int{500}},
		{"unknown board", "nope", 10, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := store.TopScores(tc.gameID, tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tc.expected) {
				t.Fatalf("Expected %d scores, got %d", len(tc.expected), len(scores))
			}
			for i, want := range tc.expected {
				if scores[i].Score != want {
					t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
				}
			}
		})
	}

	top, _ := store.TopScores("hexcat", 1)
	if top[0].Moves != 12 || top[0].Strategy != "astar" || top[0].CreatedAt.IsZero() {
		t.Errorf("Round details not stored: %+v", top[0])
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("hexcat")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore(win("hexcat", 100, 21))
	store.SaveScore(win("hexcat", 300, 9))
	store.SaveScore(win("hexcat", 200, 11))

	high, err = store.HighScore("hexcat")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(win("hexcat", 100, 21))
	store.SaveScore(win("hexcat", 200, 11))
	store.SaveScore(win("hexcat_mini", 300, 4))

	if err := store.ClearScores("hexcat"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("hexcat", 10); len(scores) != 0 {
		t.Errorf("Expected 0 hexcat scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("hexcat_mini", 10); len(scores) != 1 {
		t.Errorf("Mini scores should not be affected by clearing hexcat")
	}
}

func TestStoreSearchRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []SearchRun{
		{GameID: "hexcat", Strategy: "bfs", NodesExplored: 40, PathLength: 5},
		{GameID: "hexcat", Strategy: "bfs", NodesExplored: 60, PathLength: 7},
		{GameID: "hexcat", Strategy: "bfs", NodesExplored: 20, Trapped: true},
		{GameID: "hexcat", Strategy: "astar", NodesExplored: 10, PathLength: 5},
		{GameID: "hexcat_mini", Strategy: "dfs", NodesExplored: 3, PathLength: 3},
	}
	if err := store.SaveSearchRuns(runs[:4]); err != nil {
		t.Fatalf("SaveSearchRuns() failed: %v", err)
	}
	id, err := store.SaveSearchRun(runs[4])
	if err != nil || id == 0 {
		t.Fatalf("SaveSearchRun() = %d, %v", id, err)
	}

	stats, err := store.StrategyStats("hexcat")
	if err != nil {
		t.Fatalf("StrategyStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 strategies, got %d", len(stats))
	}

	// Sorted by strategy name
	astar, bfs := stats[0], stats[1]
	if astar.Strategy != "astar" || astar.Runs != 1 || astar.AvgNodes != 10 {
		t.Errorf("Unexpected astar stats: %+v", astar)
	}
	if bfs.Runs != 3 || bfs.AvgNodes != 40 || bfs.MaxNodes != 60 || bfs.TrappedCount != 1 {
		t.Errorf("Unexpected bfs stats: %+v", bfs)
	}
	// Trapped runs are excluded from the path average
	if bfs.AvgPathLength != 6 {
		t.Errorf("Expected average path length 6, got %v", bfs.AvgPathLength)
	}

	recent, err := store.RecentSearchRuns("hexcat", 2)
	if err != nil {
		t.Fatalf("RecentSearchRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Strategy != "astar" || !recent[1].Trapped {
		t.Errorf("Unexpected recent runs: %+v", recent)
	}
}

func TestStoreClearScoresRemovesRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(win("hexcat", 90, 5))
	store.SaveSearchRun(SearchRun{GameID: "hexcat", Strategy: "bfs", NodesExplored: 5, PathLength: 2})

	if err := store.ClearScores("hexcat"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	stats, err := store.StrategyStats("hexcat")
	if err != nil {
		t.Fatalf("StrategyStats() failed: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("Expected no strategy stats after clear, got %d", len(stats))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(win("hexcat", 100, 21))
	store.SaveScore(win("hexcat", 50, 71))

	stats, err := store.GetGameStats("hexcat")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Wins != 2 || stats.HighScore != 100 || stats.AvgScore != 75 || stats.FewestMoves != 21 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("hexcat_mini")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Wins != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}
