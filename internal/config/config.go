// Package config provides YAML-based game configuration loading and
// difficulty presets for Hex Cat.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hexcat/internal/pathfind"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// HexcatConfig contains all configuration for the Hex Cat game.
type HexcatConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Search    SearchConfig    `yaml:"search"`
	Visualize VisualizeConfig `yaml:"visualize"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ObstacleConfig defines the initial obstacle placement.
type ObstacleConfig struct {
	Count      int `yaml:"count"`
	SafeRadius int `yaml:"safe_radius"` // Rows/cols around the cat kept free
}

// SearchConfig selects the cat's strategy and the path cache policy.
type SearchConfig struct {
	Strategy     string `yaml:"strategy"`     // "bfs", "dfs" or "astar"
	Invalidation string `yaml:"invalidation"` // "route" or "neighbors"
}

// VisualizeConfig controls the search animation.
type VisualizeConfig struct {
	Auto      bool `yaml:"auto"`       // Animate after every move
	StepTicks int  `yaml:"step_ticks"` // Ticks between highlighted tiles
}

// ScoringConfig defines how a win is scored.
type ScoringConfig struct {
	MovePenalty int `yaml:"move_penalty"`
}

// Strategy returns the parsed search strategy.
func (c HexcatConfig) Strategy() (pathfind.Kind, error) {
	return pathfind.ParseKind(c.Search.Strategy)
}

// Policy returns the parsed cache invalidation policy.
func (c HexcatConfig) Policy() (pathfind.Policy, error) {
	return pathfind.ParsePolicy(c.Search.Invalidation)
}

// Validate checks the configuration for values the game cannot run with.
func (c HexcatConfig) Validate() error {
	if c.Board.Rows < 3 || c.Board.Cols < 3 {
		return fmt.Errorf("%w: board must be at least 3x3, got %dx%d", ErrInvalidConfig, c.Board.Rows, c.Board.Cols)
	}
	if c.Obstacles.Count < 0 {
		return fmt.Errorf("%w: obstacle count %d is negative", ErrInvalidConfig, c.Obstacles.Count)
	}
	if c.Obstacles.SafeRadius < 0 {
		return fmt.Errorf("%w: safe radius %d is negative", ErrInvalidConfig, c.Obstacles.SafeRadius)
	}
	if c.Visualize.StepTicks <= 0 {
		return fmt.Errorf("%w: step_ticks must be positive", ErrInvalidConfig)
	}
	if c.Scoring.MovePenalty < 0 {
		return fmt.Errorf("%w: move_penalty %d is negative", ErrInvalidConfig, c.Scoring.MovePenalty)
	}
	if _, err := c.Strategy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
}

// ApplyHexcatPreset modifies the config based on a difficulty preset.
// More starting obstacles make the cat easier to trap.
func ApplyHexcatPreset(cfg *HexcatConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Count = 22
		cfg.Obstacles.SafeRadius = 2
	case DifficultyNormal:
		cfg.Obstacles.Count = 15
		cfg.Obstacles.SafeRadius = 2
	case DifficultyHard:
		cfg.Obstacles.Count = 8
		cfg.Obstacles.SafeRadius = 3
		cfg.Search.Strategy = pathfind.AStar.String()
	}
}
