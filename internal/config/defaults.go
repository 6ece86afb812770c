package config

import (
	_ "embed"
)

//go:embed defaults/hexcat.yaml
var defaultHexcatYAML []byte

// DefaultHexcatConfig returns the built-in Hex Cat configuration.
// It matches defaults/hexcat.yaml and is used when the embedded file cannot be parsed.
func DefaultHexcatConfig() HexcatConfig {
	return HexcatConfig{
		Board: BoardConfig{
			Rows: 11,
			Cols: 11,
		},
		Obstacles: ObstacleConfig{
			Count:      15,
			SafeRadius: 2,
		},
		Search: SearchConfig{
			Strategy:     "bfs",
			Invalidation: "route",
		},
		Visualize: VisualizeConfig{
			Auto:      false,
			StepTicks: 6,
		},
		Scoring: ScoringConfig{
			MovePenalty: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultHexcatYAML
}
