package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/coursecat/internal/course"
)

// --- Plan tool ---

// PlanInput is the input for the plan tool.
type PlanInput struct {
	InDir  string   `json:"in_dir"           jsonschema:"course root directory containing entry.yml"`
	Ignore []string `json:"ignore,omitempty" jsonschema:"path or basename tokens to skip (default: server default)"`
}

// PlanOutput is the output for the plan tool.
type PlanOutput struct {
	Lessons []course.LessonPlan `json:"lessons" jsonschema:"lessons in manifest order"`
}

func (h *handlers) handlePlan(_ context.Context, _ *mcp.CallToolRequest, input PlanInput) (*mcp.CallToolResult, PlanOutput, error) {
	if input.InDir == "" {
		return nil, PlanOutput{}, fmt.Errorf("in_dir is required")
	}
	ignore := input.Ignore
	if ignore == nil {
		ignore = h.defaults.Ignore
	}

	plans, err := course.Plan(input.InDir, ignore)
	if err != nil {
		return nil, PlanOutput{}, fmt.Errorf("planning %s: %w", input.InDir, err)
	}
	return nil, PlanOutput{Lessons: plans}, nil
}

// --- Build tool ---

// BuildInput is the input for the build tool.
type BuildInput struct {
	InDir  string   `json:"in_dir"           jsonschema:"course root directory containing entry.yml"`
	OutDir string   `json:"out_dir"          jsonschema:"directory to write <lesson>.md files into"`
	Force  bool     `json:"force,omitempty"  jsonschema:"delete out_dir first if it exists"`
	Ignore []string `json:"ignore,omitempty" jsonschema:"path or basename tokens to skip (default: server default)"`
	Label  string   `json:"label,omitempty"  jsonschema:"difficulty label written before each exercise's demand"`
}

// BuildOutput is the output for the build tool.
type BuildOutput struct {
	OutDir    string                 `json:"out_dir"            jsonschema:"output directory"`
	Lessons   []course.LessonSummary `json:"lessons"            jsonschema:"generated lesson files"`
	Sections  int                    `json:"sections"           jsonschema:"sections appended across all lessons"`
	Exercises int                    `json:"exercises"          jsonschema:"exercises rendered across all lessons"`
	Warnings  []string               `json:"warnings,omitempty" jsonschema:"non-fatal problems such as missing exercise files"`
}

// warningCollector keeps warnings for the tool result and drops progress.
type warningCollector struct {
	warnings []string
}

func (c *warningCollector) Info(string, ...any) {}

func (c *warningCollector) Warn(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func (h *handlers) handleBuild(ctx context.Context, _ *mcp.CallToolRequest, input BuildInput) (*mcp.CallToolResult, BuildOutput, error) {
	h.buildMu.Lock()
	defer h.buildMu.Unlock()

	opts := course.Options{
		InDir:  input.InDir,
		OutDir: input.OutDir,
		Force:  input.Force,
		Ignore: input.Ignore,
		Label:  input.Label,
	}
	if opts.Ignore == nil {
		opts.Ignore = h.defaults.Ignore
	}
	if opts.Label == "" {
		opts.Label = h.defaults.Label
	}
	collector := &warningCollector{}
	opts.Reporter = collector

	builder, err := course.New(opts)
	if err != nil {
		return nil, BuildOutput{}, err
	}
	if err := builder.Prepare(); err != nil {
		return nil, BuildOutput{}, err
	}

	summary, err := builder.Build(ctx)
	if err != nil {
		return nil, BuildOutput{}, fmt.Errorf("building %s: %w", input.InDir, err)
	}

	return nil, BuildOutput{
		OutDir:    summary.OutDir,
		Lessons:   summary.Lessons,
		Sections:  summary.Sections(),
		Exercises: summary.Exercises(),
		Warnings:  collector.warnings,
	}, nil
}
