package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-ladders/internal/rules"
)

//go:embed defaults/ladders.yaml
var defaultLaddersYAML []byte

// DefaultLadderConfig returns the built-in configuration.
func DefaultLadderConfig() LadderConfig {
	return LadderConfig{
		Rules: RulesConfig{
			RequireExactFinish: true,
		},
		Board: BoardConfig{
			Snakes:  rules.ClassicSnakes(),
			Ladders: rules.ClassicLadders(),
		},
		Animation: AnimationConfig{
			StepMs:      220,
			ShortcutMs:  420,
			OvershootMs: 350,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLaddersYAML
}
