package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config for a runtime window.
type Config struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Resizable  bool       `yaml:"resizable"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"` // RGBA
}

// DefaultConfig is an 800×600 resizable window with vsync on.
func DefaultConfig(title string) Config {
	return Config{
		Title:      title,
		Width:      800,
		Height:     600,
		Resizable:  true,
		VSync:      true,
		ClearColor: [4]float32{0, 0, 0, 1},
	}
}

// LoadConfig reads a YAML config file over the defaults.
// Search order: customPath -> ./configs/ember.yaml -> defaults unchanged.
func LoadConfig(title, customPath string) (Config, error) {
	cfg := DefaultConfig(title)

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

	if data, err := os.ReadFile("configs/ember.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse configs/ember.yaml: %w", err)
		}
	}
	return cfg, nil
}
