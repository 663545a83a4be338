// Package config provides YAML-based board configuration loading and
// rule presets for the game.
package config

// LadderConfig contains all configuration for a snakes and ladders game.
type LadderConfig struct {
	Rules     RulesConfig     `yaml:"rules"`
	Board     BoardConfig     `yaml:"board"`
	Animation AnimationConfig `yaml:"animation"`
}

// RulesConfig defines rule switches.
type RulesConfig struct {
	RequireExactFinish bool `yaml:"require_exact_finish"`
}

// BoardConfig defines the shortcut layout. Keys are source squares.
type BoardConfig struct {
	Snakes  map[int]int `yaml:"snakes"`
	Ladders map[int]int `yaml:"ladders"`
}

// AnimationConfig defines playback pacing in milliseconds.
type AnimationConfig struct {
	StepMs      int `yaml:"step_ms"`      // Per walked square
	ShortcutMs  int `yaml:"shortcut_ms"`  // Pause before a snake/ladder jump
	OvershootMs int `yaml:"overshoot_ms"` // Hold on a rejected move
}

// Preset represents a named rule variant.
type Preset string

const (
	PresetClassic Preset = "classic" // Finish rule as configured (exact roll by default)
	PresetOpen    Preset = "open"    // Overshooting rolls stop on the last square
)

// Presets lists the known presets.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetOpen}
}

// ParsePreset converts a name into a Preset. Empty means classic.
func ParsePreset(name string) (Preset, bool) {
	switch Preset(name) {
	case "", PresetClassic:
		return PresetClassic, true
	case PresetOpen:
		return PresetOpen, true
	default:
		return "", false
	}
}
