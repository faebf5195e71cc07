// Package config loads apimap-gen settings from a .apimap.yml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = ".apimap.yml"

// Config holds settings for report generation
type Config struct {
	Source         string   `yaml:"source" validate:"required"`
	Output         string   `yaml:"output" validate:"required"`
	Format         string   `yaml:"format" validate:"oneof=text json yaml yml"`
	Prefix         string   `yaml:"prefix" validate:"required,startswith=/"`
	Extension      string   `yaml:"extension" validate:"required,startswith=."`
	Suffix         string   `yaml:"suffix" validate:"required"`
	ExcludeMethods []string `yaml:"exclude_methods" validate:"dive,required"`
}

type file struct {
	APIMap Config `yaml:"apimap"`
}

var validate = validator.New()

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Source:         "api/controllers",
		Output:         "docs/api_map.txt",
		Format:         "text",
		Prefix:         "/api",
		Extension:      ".php",
		Suffix:         "Controller",
		ExcludeMethods: []string{"__*"},
	}
}

// Load reads path over the defaults. An empty path falls back to DefaultFile
// when it exists, and to the defaults alone when it does not.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	doc := file{APIMap: *cfg}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &doc.APIMap, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
