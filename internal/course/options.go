package course

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gorewood/coursecat/internal/exercise"
	"github.com/gorewood/coursecat/internal/manifest"
)

// Reporter receives progress lines and non-fatal warnings.
type Reporter interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

type nopReporter struct{}

func (nopReporter) Info(string, ...any) {}
func (nopReporter) Warn(string, ...any) {}

// Options configures a Builder.
type Options struct {
	InDir  string `json:"in_dir"`
	OutDir string `json:"out_dir"`

	// Ignore lists path or basename tokens to skip. Nil means
	// manifest.DefaultIgnore; an empty slice ignores nothing.
	Ignore []string `json:"ignore"`

	// Force removes an existing output directory instead of failing.
	Force bool `json:"force"`

	// Label introduces each exercise's difficulty line.
	Label string `json:"label"`

	Reporter Reporter `json:"-"`
}

func (o *Options) applyDefaults() {
	if o.Ignore == nil {
		o.Ignore = append([]string(nil), manifest.DefaultIgnore...)
	}
	if o.Label == "" {
		o.Label = exercise.DefaultLabel
	}
	if o.Reporter == nil {
		o.Reporter = nopReporter{}
	}
}

// Validate checks that both directories are set and that neither one
// contains the other.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.InDir, validation.Required),
		validation.Field(&o.OutDir, validation.Required, validation.By(func(value any) error {
			out, _ := value.(string)
			if o.InDir == "" {
				return nil
			}
			return checkDisjoint(o.InDir, out)
		})),
	)
}

// checkDisjoint fails when in and out are the same directory or one is
// nested inside the other.
func checkDisjoint(in, out string) error {
	absIn, err := filepath.Abs(in)
	if err != nil {
		return fmt.Errorf("resolving input directory: %w", err)
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}

	switch {
	case absIn == absOut:
		return errors.New("must differ from the input directory")
	case within(absOut, absIn):
		return errors.New("must not contain the input directory")
	case within(absIn, absOut):
		return errors.New("must not be inside the input directory")
	}
	return nil
}

// within reports whether path lies under dir. Both must be absolute.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
