package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-ladders/internal/rules"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "ladders.yaml"

// LoadLadders loads the game configuration.
// Search order: customPath -> ~/.ladders/configs/ladders.yaml -> ./configs/ladders.yaml -> embedded default
func LoadLadders(customPath string) (LadderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LadderConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return LadderConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultLaddersYAML)
	if err != nil {
		return DefaultLadderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses YAML on top of the defaults. Missing scalars keep their
// default; a missing snakes or ladders section means the classic layout,
// while an explicit empty mapping means none.
func decode(data []byte) (LadderConfig, error) {
	cfg := DefaultLadderConfig()
	cfg.Board = BoardConfig{}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LadderConfig{}, err
	}

	if cfg.Board.Snakes == nil {
		cfg.Board.Snakes = rules.ClassicSnakes()
	}
	if cfg.Board.Ladders == nil {
		cfg.Board.Ladders = rules.ClassicLadders()
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ladders", "configs", filename)
}

// ApplyPreset modifies the config based on a rule preset.
// Classic keeps the configured finish rule; open always lifts it.
func ApplyPreset(cfg *LadderConfig, preset Preset) {
	if preset == PresetOpen {
		cfg.Rules.RequireExactFinish = false
	}
}

// NewBoard validates the configured layout and builds the board.
func (c LadderConfig) NewBoard() (rules.Board, error) {
	board, err := rules.NewBoard(rules.DefaultBoardSize, c.Board.Snakes, c.Board.Ladders)
	if err != nil {
		return rules.Board{}, fmt.Errorf("config: %w", err)
	}
	return board, nil
}

// NewEngine builds a rules engine from the configuration.
func (c LadderConfig) NewEngine() (*rules.Engine, error) {
	board, err := c.NewBoard()
	if err != nil {
		return nil, err
	}
	return rules.NewEngine(board, rules.WithExactFinish(c.Rules.RequireExactFinish)), nil
}

// StepDuration returns the per-square animation delay.
func (a AnimationConfig) StepDuration() time.Duration {
	return time.Duration(max(a.StepMs, 0)) * time.Millisecond
}

// ShortcutDuration returns the pause before a shortcut jump.
func (a AnimationConfig) ShortcutDuration() time.Duration {
	return time.Duration(max(a.ShortcutMs, 0)) * time.Millisecond
}

// OvershootDuration returns how long a rejected move is held.
func (a AnimationConfig) OvershootDuration() time.Duration {
	return time.Duration(max(a.OvershootMs, 0)) * time.Millisecond
}
