package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/coursecat/internal/course"
	"github.com/gorewood/coursecat/internal/exercise"
	"github.com/gorewood/coursecat/internal/manifest"
	"github.com/gorewood/coursecat/internal/output"
)

func TestBuildCommand_WritesLessons(t *testing.T) {
	isolateConfig(t)
	in := t.TempDir()
	writeFiles(t, in, sampleCourse())
	out := filepath.Join(t.TempDir(), "build")

	stdout, stderr, err := execute(t, "build", in, out)
	if err != nil {
		t.Fatalf("build error = %v\nstderr: %s", err, stderr)
	}

	data, err := os.ReadFile(filepath.Join(out, "L1.md"))
	if err != nil {
		t.Fatal(err)
	}
	want := "# Greeting\nhello\n\n## Basics\n\n### 0. Add\nObtížnost: easy\n\nBody text\n"
	if string(data) != want {
		t.Errorf("L1.md = %q, want %q", data, want)
	}

	if !strings.Contains(stdout, "Built 1 lessons (1 sections, 1 exercises)") {
		t.Errorf("stdout missing summary: %q", stdout)
	}
	if !strings.Contains(stderr, "excs/ex1") {
		t.Errorf("stderr missing progress line: %q", stderr)
	}
}

func TestBuildCommand_JSON(t *testing.T) {
	isolateConfig(t)
	in := t.TempDir()
	writeFiles(t, in, sampleCourse())
	out := filepath.Join(t.TempDir(), "build")

	stdout, _, err := execute(t, "build", in, out, "--json")
	if err != nil {
		t.Fatalf("build error = %v", err)
	}

	var result struct {
		OutDir    string `json:"out_dir"`
		Sections  int    `json:"sections"`
		Exercises int    `json:"exercises"`
		Missing   int    `json:"missing"`
		Lessons   []any  `json:"lessons"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("stdout should be one JSON document: %v\n%s", err, stdout)
	}
	if result.OutDir != out {
		t.Errorf("out_dir = %q, want %q", result.OutDir, out)
	}
	if len(result.Lessons) != 1 || result.Sections != 1 || result.Exercises != 1 || result.Missing != 0 {
		t.Errorf("unexpected counts: %+v", result)
	}
}

func TestBuildCommand_JSONWithMissingExercise(t *testing.T) {
	isolateConfig(t)
	in := t.TempDir()
	files := sampleCourse()
	files["L1/excs.md"] = "## Basics\n[excs>ex1]\n[excs>gone]\n"
	writeFiles(t, in, files)
	out := filepath.Join(t.TempDir(), "build")

	stdout, _, err := execute(t, "build", in, out, "--json")
	if err != nil {
		t.Fatalf("build error = %v", err)
	}

	var result struct {
		Missing  int      `json:"missing"`
		Warnings []string `json:"warnings"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("stdout should be one JSON document: %v\n%s", err, stdout)
	}
	if result.Missing != 1 {
		t.Errorf("missing = %d, want 1", result.Missing)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "gone.md does not exist") {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestBuildCommand_ForceIntoParentOfInput(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()
	in := filepath.Join(root, "src")
	writeFiles(t, in, sampleCourse())

	_, _, err := execute(t, "build", in, root, "-f")
	if err == nil {
		t.Fatal("expected error when out_dir contains in_dir")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if _, err := os.Stat(filepath.Join(in, "entry.yml")); err != nil {
		t.Errorf("course manifest should survive: %v", err)
	}
}

func TestBuildCommand_OutputExists(t *testing.T) {
	isolateConfig(t)
	in := t.TempDir()
	writeFiles(t, in, sampleCourse())
	out := t.TempDir()

	_, stderr, err := execute(t, "build", in, out)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if code := output.GetExitCode(err); code != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", code, output.ExitConflict)
	}
	if !strings.Contains(stderr, "--force") {
		t.Errorf("stderr should suggest --force: %q", stderr)
	}

	if _, _, err := execute(t, "build", in, out, "-f"); err != nil {
		t.Fatalf("build -f error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "L1.md")); err != nil {
		t.Errorf("L1.md not written: %v", err)
	}
}

func TestBuildCommand_FlagsOverrideConfig(t *testing.T) {
	cfgDir := isolateConfig(t)
	writeFiles(t, cfgDir, map[string]string{"config.yaml": "label: Level\n"})

	in := t.TempDir()
	writeFiles(t, in, sampleCourse())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "config label", args: nil, want: "Level: easy"},
		{name: "flag label", args: []string{"--label", "Difficulty"}, want: "Difficulty: easy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "build")
			args := append([]string{"build", in, out}, tt.args...)
			if _, _, err := execute(t, args...); err != nil {
				t.Fatalf("build error = %v", err)
			}
			data, err := os.ReadFile(filepath.Join(out, "L1.md"))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("L1.md should contain %q: %q", tt.want, data)
			}
		})
	}
}

func TestBuildCommand_IgnoreFlag(t *testing.T) {
	isolateConfig(t)
	in := t.TempDir()
	files := sampleCourse()
	files["entry.yml"] = "lessons: [L1, L2]\n"
	files["L2/entry.yml"] = "sections: [S1]\n"
	files["L2/S1.md"] = "second"
	writeFiles(t, in, files)
	out := filepath.Join(t.TempDir(), "build")

	if _, _, err := execute(t, "build", in, out, "--ignore", "excs.md,L2"); err != nil {
		t.Fatalf("build error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "L2.md")); !os.IsNotExist(err) {
		t.Errorf("L2.md should not exist, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "L1.md")); err != nil {
		t.Errorf("L1.md should exist: %v", err)
	}
}

func TestBuildCommand_UserErrors(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name:  "missing root manifest",
			files: map[string]string{"README.md": "nothing"},
		},
		{
			name: "malformed exercise header",
			files: map[string]string{
				"entry.yml":      "lessons: [L1]\n",
				"L1/entry.yml":   "sections: [excs]\n",
				"L1/excs.md":     "## Basics\n[excs>ex1]\n",
				"L1/excs/ex1.md": "title: Add\n",
			},
		},
		{
			name: "missing index",
			files: map[string]string{
				"entry.yml":    "lessons: [L1]\n",
				"L1/entry.yml": "sections: [excs]\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := t.TempDir()
			writeFiles(t, in, tt.files)
			out := filepath.Join(t.TempDir(), "build")

			_, _, err := execute(t, "build", in, out)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := output.GetExitCode(err); code != output.ExitUserError {
				t.Errorf("exit code = %d, want %d (err: %v)", code, output.ExitUserError, err)
			}
		})
	}
}

func TestBuildCommand_RequiresTwoArgs(t *testing.T) {
	isolateConfig(t)
	if _, _, err := execute(t, "build", t.TempDir()); err == nil {
		t.Error("expected error for missing out_dir")
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "output exists", err: course.ErrOutputExists, want: output.ExitConflict},
		{name: "config error", err: &manifest.ConfigError{Path: "entry.yml", Reason: "missing"}, want: output.ExitUserError},
		{name: "parse error", err: &exercise.ParseError{Reason: exercise.ReasonMissingOpen}, want: output.ExitUserError},
		{name: "index not found", err: exercise.ErrIndexNotFound, want: output.ExitUserError},
		{name: "exit error passthrough", err: output.NewSystemErrorWithCause("disk", nil), want: output.ExitSystemError},
		{name: "other", err: errors.New("permission denied"), want: output.ExitSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyError(tt.err).Code; got != tt.want {
				t.Errorf("classifyError() code = %d, want %d", got, tt.want)
			}
		})
	}
}
