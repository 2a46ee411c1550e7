package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// FileName is the manifest file expected in every lesson and section directory.
const FileName = "entry.yml"

// Key selects which child list of a manifest to walk.
type Key string

// Manifest keys.
const (
	KeyLessons  Key = "lessons"
	KeySections Key = "sections"
)

// Manifest is the decoded content of an entry.yml file.
type Manifest struct {
	Lessons  []string `yaml:"lessons"`
	Sections []string `yaml:"sections"`
	Ignore   []string `yaml:"ignore"`

	// Dir is the directory the manifest was loaded from.
	Dir string `yaml:"-"`
}

// ConfigError reports a missing or invalid manifest.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads and validates <dir>/entry.yml.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{Path: dir, Reason: "no " + FileName + " found", Err: err}
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(dir, data)
}

// Parse decodes manifest bytes as if they were loaded from dir.
func Parse(dir string, data []byte) (*Manifest, error) {
	path := filepath.Join(dir, FileName)

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ConfigError{Path: path, Reason: "invalid yaml", Err: err}
	}
	if err := m.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Reason: "invalid manifest", Err: err}
	}
	m.Dir = dir
	return &m, nil
}

// Validate checks that every listed child has a name.
func (m Manifest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Lessons, validation.Each(validation.Required)),
		validation.Field(&m.Sections, validation.Each(validation.Required)),
		validation.Field(&m.Ignore, validation.Each(validation.Required)),
	)
}

// Entries returns the child names listed under key, in manifest order.
// A key that is absent from the file is a ConfigError; an empty list is not.
func (m *Manifest) Entries(key Key) ([]string, error) {
	var entries []string
	switch key {
	case KeyLessons:
		entries = m.Lessons
	case KeySections:
		entries = m.Sections
	default:
		return nil, fmt.Errorf("unknown manifest key %q", key)
	}
	if entries == nil {
		return nil, &ConfigError{
			Path:   filepath.Join(m.Dir, FileName),
			Reason: fmt.Sprintf("missing %q list", key),
		}
	}
	return entries, nil
}
