// Package config loads server configuration from YAML over opinionated
// defaults. Configuration is passed explicitly; nothing here is a global.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Addr     string `yaml:"addr" validate:"required"`
	LogLevel string `yaml:"logLevel" validate:"oneof=debug info warn error"`
	Language string `yaml:"language" validate:"oneof=zh-TW english spanish vietnamese"`

	Store struct {
		// Kind selects the history sink: sqlite or fs.
		Kind string `yaml:"kind" validate:"oneof=sqlite fs"`
		Path string `yaml:"path" validate:"required"`
	} `yaml:"store"`

	Generator struct {
		GridSize          int `yaml:"gridSize" validate:"min=1,max=8"`
		ColorCount        int `yaml:"colorCount" validate:"min=2,max=8"`
		CongruencePercent int `yaml:"congruencePercent" validate:"min=0,max=100"`
	} `yaml:"generator"`
}

// Default mirrors the original application's settings: an 8x8 grid with
// the standard 4-color tier and 12% congruence for maximum interference.
func Default() Config {
	var c Config
	c.Addr = ":8080"
	c.LogLevel = "info"
	c.Language = "zh-TW"
	c.Store.Kind = "sqlite"
	c.Store.Path = "./data/history.db"
	c.Generator.GridSize = 8
	c.Generator.ColorCount = 4
	c.Generator.CongruencePercent = 12
	return c
}

// Load overlays the YAML file at path onto the defaults and validates the
// result. An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
