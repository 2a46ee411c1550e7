package course

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/coursecat/internal/exercise"
	"github.com/gorewood/coursecat/internal/lessonfile"
	"github.com/gorewood/coursecat/internal/manifest"
	"github.com/gorewood/coursecat/internal/outline"
)

// SectionPlan is a section that would be appended to a lesson.
type SectionPlan struct {
	Path  string `json:"path"`
	Title string `json:"title,omitempty"`
}

// LessonPlan is the resolved layout of one lesson.
type LessonPlan struct {
	Name      string        `json:"name"`
	Dir       string        `json:"dir"`
	Output    string        `json:"output"`
	Sections  []SectionPlan `json:"sections"`
	Exercises int           `json:"exercises"`

	// HasExercises is true when the lesson lists the excs section.
	HasExercises bool `json:"has_exercises"`
}

// Plan walks the course under inDir and reports what a build would write,
// without touching any output. Section titles are the first heading of
// each file.
func Plan(inDir string, ignore []string) ([]LessonPlan, error) {
	if ignore == nil {
		ignore = manifest.DefaultIgnore
	}
	walker := manifest.NewWalker(manifest.NewIgnoreSet(ignore...))

	lessons, err := walker.Lessons(inDir)
	if err != nil {
		return nil, err
	}

	plans := make([]LessonPlan, 0, len(lessons))
	for _, lessonDir := range lessons {
		plan, err := planLesson(walker, lessonDir)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func planLesson(walker *manifest.Walker, lessonDir string) (LessonPlan, error) {
	name := filepath.Base(lessonDir)
	plan := LessonPlan{
		Name:     name,
		Dir:      lessonDir,
		Output:   name + lessonfile.Ext,
		Sections: []SectionPlan{},
	}

	sections, err := walker.Sections(lessonDir)
	if err != nil {
		return plan, err
	}

	for _, section := range sections {
		if filepath.Base(section) == exercise.DirName {
			plan.HasExercises = true
			continue
		}
		path := section + lessonfile.Ext
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return plan, &manifest.ConfigError{Path: path, Reason: "section file not found", Err: err}
			}
			return plan, fmt.Errorf("reading section %s: %w", path, err)
		}
		plan.Sections = append(plan.Sections, SectionPlan{Path: path, Title: outline.Title(data)})
	}

	if plan.HasExercises {
		ix, err := exercise.LoadIndex(filepath.Join(lessonDir, exercise.IndexFile))
		if err != nil {
			return plan, err
		}
		plan.Exercises = ix.Count()
	}
	return plan, nil
}
