package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/asteroids.yaml
var defaultGameYAML []byte

type gameConfig struct {
	Ship shipConfig `yaml:"ship"`
	Font fontConfig `yaml:"font"`
}

type shipConfig struct {
	Speed float64 `yaml:"speed"` // pixels per second
	Size  float64 `yaml:"size"`  // square side in pixels
}

type fontConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}

// loadGameConfig loads the game tunables.
// Search order: customPath -> ./configs/asteroids.yaml -> embedded default.
func loadGameConfig(customPath string) (gameConfig, error) {
	var cfg gameConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if data, err := os.ReadFile("configs/asteroids.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("parse embedded default config: %w", err)
	}
	return cfg, nil
}
