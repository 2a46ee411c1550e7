// Package config loads user defaults for coursecat.
//
// Defaults live in <Dir()>/config.yaml:
//
//	label: Difficulty
//	ignore:
//	  - excs.md
//	  - drafts
//
// Command-line flags always win over the file. A missing file yields the
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/coursecat/internal/exercise"
	"github.com/gorewood/coursecat/internal/manifest"
)

// FileName is the config file inside Dir().
const FileName = "config.yaml"

// Config holds user defaults for the build command.
type Config struct {
	Label  string   `yaml:"label"`
	Ignore []string `yaml:"ignore"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Label:  exercise.DefaultLabel,
		Ignore: append([]string(nil), manifest.DefaultIgnore...),
	}
}

// Validate rejects empty ignore tokens.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Ignore, validation.Each(validation.Required)),
	)
}

// Dir returns the coursecat configuration directory.
//
// Resolution:
//   - $COURSECAT_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/coursecat if set
//   - %AppData%/coursecat on Windows
//   - ~/.config/coursecat on macOS and Linux
func Dir() string {
	if dir := os.Getenv("COURSECAT_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "coursecat")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "coursecat")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "coursecat")
}

// Load reads <Dir()>/config.yaml over the defaults.
func Load() (Config, error) {
	dir := Dir()
	if dir == "" {
		return Default(), nil
	}
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads path over the defaults. Keys absent from the file keep
// their default values.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := file.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if file.Label != "" {
		cfg.Label = file.Label
	}
	if file.Ignore != nil {
		cfg.Ignore = file.Ignore
	}
	return cfg, nil
}
