package course

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/coursecat/internal/exercise"
	"github.com/gorewood/coursecat/internal/lessonfile"
	"github.com/gorewood/coursecat/internal/manifest"
)

// ErrOutputExists is returned by Prepare when the output directory is
// already present and Force is not set.
var ErrOutputExists = errors.New("output directory already exists")

// LessonSummary describes one generated lesson file.
type LessonSummary struct {
	Name      string   `json:"name"`
	Output    string   `json:"output"`
	Sections  int      `json:"sections"`
	Exercises int      `json:"exercises"`
	Missing   []string `json:"missing,omitempty"`
}

// Summary describes a completed build.
type Summary struct {
	OutDir  string          `json:"out_dir"`
	Lessons []LessonSummary `json:"lessons"`
}

// Sections returns the number of sections appended across all lessons.
func (s *Summary) Sections() int {
	n := 0
	for _, l := range s.Lessons {
		n += l.Sections
	}
	return n
}

// Exercises returns the number of exercises rendered across all lessons.
func (s *Summary) Exercises() int {
	n := 0
	for _, l := range s.Lessons {
		n += l.Exercises
	}
	return n
}

// Missing returns the number of exercise references that had no file.
func (s *Summary) Missing() int {
	n := 0
	for _, l := range s.Lessons {
		n += len(l.Missing)
	}
	return n
}

// Builder concatenates a course tree into lesson files.
type Builder struct {
	opts     Options
	walker   *manifest.Walker
	renderer *exercise.Renderer
}

// New validates opts and creates a Builder.
func New(opts Options) (*Builder, error) {
	opts.applyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid build options: %w", err)
	}
	return &Builder{
		opts:     opts,
		walker:   manifest.NewWalker(manifest.NewIgnoreSet(opts.Ignore...)),
		renderer: exercise.NewRenderer(opts.Label, opts.Reporter),
	}, nil
}

// Prepare creates the output directory. An existing directory is removed
// first when Force is set, otherwise ErrOutputExists is returned.
func (b *Builder) Prepare() error {
	out := b.opts.OutDir
	if _, err := os.Stat(out); err == nil {
		if !b.opts.Force {
			return fmt.Errorf("%w: %s", ErrOutputExists, out)
		}
		if err := os.RemoveAll(out); err != nil {
			return fmt.Errorf("removing output directory %s: %w", out, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking output directory %s: %w", out, err)
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", out, err)
	}
	return nil
}

// Build writes every lesson. The context is checked between lessons; a
// lesson that has started is always finished or failed, never abandoned.
func (b *Builder) Build(ctx context.Context) (*Summary, error) {
	lessons, err := b.walker.Lessons(b.opts.InDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{OutDir: b.opts.OutDir, Lessons: make([]LessonSummary, 0, len(lessons))}
	for _, lessonDir := range lessons {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("build interrupted: %w", err)
		}

		b.opts.Reporter.Info("%s", lessonDir)
		lesson, err := b.buildLesson(lessonDir)
		if err != nil {
			return summary, err
		}
		summary.Lessons = append(summary.Lessons, lesson)
	}
	return summary, nil
}

func (b *Builder) buildLesson(lessonDir string) (LessonSummary, error) {
	out := lessonfile.Path(b.opts.OutDir, lessonDir)
	lesson := LessonSummary{Name: filepath.Base(lessonDir), Output: out}

	sections, err := b.walker.Sections(lessonDir)
	if err != nil {
		return lesson, err
	}

	hasExercises := false
	for _, section := range sections {
		if filepath.Base(section) == exercise.DirName {
			hasExercises = true
			continue
		}
		b.opts.Reporter.Info("  %s", section)
		if err := appendSection(section+lessonfile.Ext, out); err != nil {
			return lesson, err
		}
		lesson.Sections++
	}

	if hasExercises {
		result, err := b.renderer.Render(lessonDir, out)
		lesson.Exercises = result.Rendered
		lesson.Missing = result.Missing
		if err != nil {
			return lesson, err
		}
	}
	return lesson, nil
}

// appendSection copies a section file to the lesson output, followed by a
// newline.
func appendSection(path, out string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &manifest.ConfigError{Path: path, Reason: "section file not found", Err: err}
		}
		return fmt.Errorf("reading section %s: %w", path, err)
	}
	return lessonfile.AppendString(out, string(data)+"\n")
}
