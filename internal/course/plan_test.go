package course

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gorewood/coursecat/internal/exercise"
)

func TestPlan(t *testing.T) {
	in := t.TempDir()
	writeTree(t, in, map[string]string{
		"entry.yml":         "lessons: [intro, loops]\n",
		"intro/entry.yml":   "sections: [welcome, excs]\n",
		"intro/welcome.md":  "# Welcome to *Go*\n\ntext\n",
		"intro/excs.md":     "## A\n[excs>x]\n[excs>y]\n## B\n[excs>z]\n",
		"loops/entry.yml":   "sections: [for, untitled]\n",
		"loops/for.md":      "## The for loop\n",
		"loops/untitled.md": "no heading here\n",
	})

	plans, err := Plan(in, nil)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("len(plans) = %d, want 2", len(plans))
	}

	intro := plans[0]
	if intro.Name != "intro" || intro.Output != "intro.md" {
		t.Errorf("intro = %+v", intro)
	}
	if !intro.HasExercises || intro.Exercises != 3 {
		t.Errorf("intro exercises = %v/%d, want true/3", intro.HasExercises, intro.Exercises)
	}
	if len(intro.Sections) != 1 || intro.Sections[0].Title != "Welcome to Go" {
		t.Errorf("intro sections = %+v", intro.Sections)
	}

	loops := plans[1]
	if loops.HasExercises {
		t.Error("loops should have no exercises")
	}
	wantPaths := []string{filepath.Join(in, "loops", "for.md"), filepath.Join(in, "loops", "untitled.md")}
	for i, section := range loops.Sections {
		if section.Path != wantPaths[i] {
			t.Errorf("section %d path = %q, want %q", i, section.Path, wantPaths[i])
		}
	}
	if loops.Sections[0].Title != "The for loop" || loops.Sections[1].Title != "" {
		t.Errorf("loops sections = %+v", loops.Sections)
	}
}

func TestPlan_MalformedIndex(t *testing.T) {
	in := t.TempDir()
	writeTree(t, in, map[string]string{
		"entry.yml":    "lessons: [L1]\n",
		"L1/entry.yml": "sections: [excs]\n",
		"L1/excs.md":   "## A\nnot a reference\n",
	})

	_, err := Plan(in, nil)
	var parseErr *exercise.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Plan() error = %v, want *exercise.ParseError", err)
	}
}
