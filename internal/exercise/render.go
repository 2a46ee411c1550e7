package exercise

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gorewood/coursecat/internal/lessonfile"
)

const (
	// DirName is the reserved section name that attaches exercises to a
	// lesson. It also names the directory holding the exercise files.
	DirName = "excs"

	// IndexFile lists a lesson's exercises under subtitles.
	IndexFile = "excs.md"

	// DefaultLabel introduces the difficulty line of each exercise.
	DefaultLabel = "Obtížnost"
)

// Reporter receives progress and warnings from the renderer.
type Reporter interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// Result summarises one lesson's exercise block.
type Result struct {
	Rendered int
	Missing  []string
}

// Renderer appends exercise blocks to lesson files.
type Renderer struct {
	label    string
	reporter Reporter
}

type nopReporter struct{}

func (nopReporter) Info(string, ...any) {}
func (nopReporter) Warn(string, ...any) {}

// NewRenderer creates a Renderer. An empty label falls back to DefaultLabel
// and a nil reporter discards everything.
func NewRenderer(label string, reporter Reporter) *Renderer {
	if label == "" {
		label = DefaultLabel
	}
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Renderer{label: label, reporter: reporter}
}

// Render reads <lessonDir>/excs.md and appends every exercise it lists to
// outPath. Numbering restarts at 0 for each call.
func (r *Renderer) Render(lessonDir, outPath string) (Result, error) {
	ix, err := LoadIndex(filepath.Join(lessonDir, IndexFile))
	if err != nil {
		return Result{}, err
	}
	return r.RenderIndex(ix, lessonDir, outPath)
}

// RenderIndex appends the exercises of an already scanned index.
func (r *Renderer) RenderIndex(ix *Index, lessonDir, outPath string) (Result, error) {
	var result Result
	for _, group := range ix.Groups() {
		err := lessonfile.Append(outPath, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "\n## %s\n", group.Subtitle); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			for _, id := range group.IDs {
				rendered, err := r.renderOne(w, lessonDir, id, result.Rendered)
				if err != nil {
					return err
				}
				if !rendered {
					result.Missing = append(result.Missing, id)
					continue
				}
				result.Rendered++
			}
			return nil
		})
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// renderOne writes exercise id as number n. It returns false without error
// when the exercise file does not exist.
func (r *Renderer) renderOne(w io.Writer, lessonDir, id string, n int) (bool, error) {
	path := filepath.Join(lessonDir, DirName, id+".md")
	r.reporter.Info("    %s/%s", DirName, id)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		r.reporter.Warn("%s does not exist", path)
		return false, nil
	}

	ex, err := Load(path)
	if err != nil {
		return false, err
	}

	if _, err := fmt.Fprintf(w, "\n### %d. %s\n%s: %s\n\n%s", n, ex.Header.Title, r.label, ex.Header.Demand, ex.Body); err != nil {
		return false, fmt.Errorf("writing exercise %s: %w", id, err)
	}
	return true, nil
}
