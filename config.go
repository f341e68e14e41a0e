package main

import (
	"fmt"
	"strings"

	"github.com/Readm/sortviz/engine"
)

// Defaults shared by configuration construction and validation.
const (
	DefaultDatasetSize    = 150
	DefaultShuffleDelayMS = 1
	DefaultMergeExtraMS   = 2
	DefaultWebAddr        = "127.0.0.1:8080"

	// Window geometry handed to the renderers.
	WindowWidth  = 1280
	WindowHeight = 1000
)

// Config captures every knob of a visualizer run.
type Config struct {
	DatasetSize int    `json:"datasetSize"`
	Algorithm   string `json:"algorithm"`

	// StepDelayMS is the artificial pause after each sort step; user
	// adjustable at runtime, floored at zero.
	StepDelayMS int `json:"stepDelayMs"`
	// ShuffleDelayMS paces the reshuffle animation.
	ShuffleDelayMS int `json:"shuffleDelayMs"`
	// MergeExtraMS stretches the delay during the merge copy phase so the
	// write-back stays readable.
	MergeExtraMS int `json:"mergeExtraMs"`

	// Seed makes runs reproducible when non-zero.
	Seed int64 `json:"seed"`

	Headless   bool   `json:"headless"`
	VisualMode string `json:"visualMode"` // "fyne", "web" or "none"
	WebAddr    string `json:"webAddr"`
}

// DefaultConfig returns the configuration used when no preset or flags
// override it.
func DefaultConfig() *Config {
	return &Config{
		DatasetSize:    DefaultDatasetSize,
		Algorithm:      "bubble",
		ShuffleDelayMS: DefaultShuffleDelayMS,
		MergeExtraMS:   DefaultMergeExtraMS,
		VisualMode:     "fyne",
		WebAddr:        DefaultWebAddr,
	}
}

// ValidateConfig applies structural checks to Config and populates
// defaults where required.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DatasetSize < 0 {
		return fmt.Errorf("DatasetSize must be non-negative, got %d", cfg.DatasetSize)
	}
	if cfg.StepDelayMS < 0 {
		return fmt.Errorf("StepDelayMS must be non-negative, got %d", cfg.StepDelayMS)
	}
	if _, err := ParseAlgorithm(cfg.Algorithm); err != nil {
		return err
	}
	switch cfg.VisualMode {
	case "", "fyne", "web", "none":
	default:
		return fmt.Errorf("VisualMode must be fyne, web or none, got %q", cfg.VisualMode)
	}
	if cfg.VisualMode == "" {
		cfg.VisualMode = "fyne"
	}
	if cfg.ShuffleDelayMS <= 0 {
		cfg.ShuffleDelayMS = DefaultShuffleDelayMS
	}
	if cfg.MergeExtraMS < 0 {
		cfg.MergeExtraMS = DefaultMergeExtraMS
	}
	if cfg.WebAddr == "" {
		cfg.WebAddr = DefaultWebAddr
	}
	return nil
}

// ParseAlgorithm resolves an algorithm name from flags or presets.
func ParseAlgorithm(name string) (engine.Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bubble":
		return engine.Bubble, nil
	case "selection":
		return engine.Selection, nil
	case "insertion":
		return engine.Insertion, nil
	case "quick":
		return engine.Quick, nil
	case "merge":
		return engine.Merge, nil
	default:
		return engine.Bubble, fmt.Errorf("unknown algorithm %q (want bubble, selection, insertion, quick or merge)", name)
	}
}

// PresetConfig represents a predefined visualizer configuration.
type PresetConfig struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Config      *Config `json:"-"`
}

// GetPredefinedConfigs returns all available predefined configurations.
func GetPredefinedConfigs() []PresetConfig {
	return []PresetConfig{
		{
			Name:        "classroom",
			Description: "Default classroom setup: 150 bars, no added delay, desktop window",
			Config: &Config{
				DatasetSize:    DefaultDatasetSize,
				Algorithm:      "bubble",
				StepDelayMS:    0,
				ShuffleDelayMS: DefaultShuffleDelayMS,
				MergeExtraMS:   DefaultMergeExtraMS,
				VisualMode:     "fyne",
				WebAddr:        DefaultWebAddr,
			},
		},
		{
			Name:        "slow_motion",
			Description: "60 bars with a 5ms step delay so each comparison is easy to follow",
			Config: &Config{
				DatasetSize:    60,
				Algorithm:      "insertion",
				StepDelayMS:    5,
				ShuffleDelayMS: DefaultShuffleDelayMS,
				MergeExtraMS:   DefaultMergeExtraMS,
				VisualMode:     "fyne",
				WebAddr:        DefaultWebAddr,
			},
		},
		{
			Name:        "browser_demo",
			Description: "Web mode: frames and tone streamed to the browser over WebSocket",
			Config: &Config{
				DatasetSize:    DefaultDatasetSize,
				Algorithm:      "quick",
				StepDelayMS:    1,
				ShuffleDelayMS: DefaultShuffleDelayMS,
				MergeExtraMS:   DefaultMergeExtraMS,
				VisualMode:     "web",
				WebAddr:        DefaultWebAddr,
			},
		},
	}
}

// GetConfigByName returns a copy of the Config for the specified preset
// name, or nil when the preset does not exist.
func GetConfigByName(name string) *Config {
	for _, preset := range GetPredefinedConfigs() {
		if preset.Name == name {
			cfg := *preset.Config
			return &cfg
		}
	}
	return nil
}
