package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/coursecat/internal/config"
	"github.com/gorewood/coursecat/internal/course"
	"github.com/gorewood/coursecat/internal/output"
)

// buildFlags holds the flag values of the build command.
type buildFlags struct {
	force  bool
	ignore []string
	label  string
}

// buildReporter forwards progress to the printer and keeps warnings for
// the JSON summary. In JSON mode warnings are only collected.
type buildReporter struct {
	printer  *output.Printer
	warnings []string
}

func (r *buildReporter) Info(format string, args ...any) {
	r.printer.Info(format, args...)
}

func (r *buildReporter) Warn(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
	if !r.printer.IsJSON() {
		r.printer.Warn(format, args...)
	}
}

// newBuildCmd creates the build command.
func newBuildCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build <in_dir> <out_dir>",
		Short: "Write one markdown file per lesson",
		Long: `Concatenate every lesson of a course into <out_dir>/<lesson>.md.

Sections are appended in entry.yml order, each followed by a newline.
Lessons listing the "excs" section get their exercises appended last,
grouped by the ## subtitles of excs.md and numbered from 0.

Defaults for --ignore and --label can be set in the config file
(coursecat config dir, config.yaml).

Examples:
  coursecat build course build               # Fails if build/ exists
  coursecat build course build -f            # Replace build/
  coursecat build course build --ignore excs.md,drafts
  coursecat build course build --label Difficulty --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Delete and recreate out_dir if it exists")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "Paths or basenames to skip (default from config, else excs.md)")
	cmd.Flags().StringVar(&flags.label, "label", "", "Difficulty label before each exercise's demand (default from config, else Obtížnost)")

	return cmd
}

// runBuild executes the build command.
func runBuild(cmd *cobra.Command, inDir, outDir string, flags buildFlags) error {
	printer := newPrinter(cmd)

	cfg, err := config.Load()
	if err != nil {
		return fail(printer, output.NewUserErrorWithCause(err.Error(), err))
	}

	reporter := &buildReporter{printer: printer, warnings: []string{}}
	opts := course.Options{
		InDir:    inDir,
		OutDir:   outDir,
		Force:    flags.force,
		Ignore:   cfg.Ignore,
		Label:    cfg.Label,
		Reporter: reporter,
	}
	if flags.ignore != nil {
		opts.Ignore = flags.ignore
	}
	if flags.label != "" {
		opts.Label = flags.label
	}

	builder, err := course.New(opts)
	if err != nil {
		return fail(printer, output.NewUserErrorWithCause(err.Error(), err))
	}
	if err := builder.Prepare(); err != nil {
		return fail(printer, err)
	}

	summary, err := builder.Build(cmd.Context())
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"out_dir":   summary.OutDir,
			"lessons":   summary.Lessons,
			"sections":  summary.Sections(),
			"exercises": summary.Exercises(),
			"missing":   summary.Missing(),
			"warnings":  reporter.warnings,
		})
	}

	msg := fmt.Sprintf("Built %d lessons (%d sections, %d exercises) in %s",
		len(summary.Lessons), summary.Sections(), summary.Exercises(), summary.OutDir)
	if n := summary.Missing(); n > 0 {
		msg += fmt.Sprintf("; %d missing exercises skipped", n)
	}
	return printer.Success(map[string]any{"message": msg})
}
