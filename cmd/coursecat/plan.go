package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/coursecat/internal/config"
	"github.com/gorewood/coursecat/internal/course"
	"github.com/gorewood/coursecat/internal/output"
)

// newPlanCmd creates the plan command.
func newPlanCmd() *cobra.Command {
	var ignore []string

	cmd := &cobra.Command{
		Use:   "plan <in_dir>",
		Short: "Show lessons and sections without writing anything",
		Long: `Walk the course manifests and list what build would write.

Each section is shown with the first heading of its file. Lessons with
exercises show how many references excs.md contains.

Examples:
  coursecat plan course
  coursecat plan course --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, args[0], ignore)
		},
	}

	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "Paths or basenames to skip (default from config, else excs.md)")

	return cmd
}

// runPlan executes the plan command.
func runPlan(cmd *cobra.Command, inDir string, ignore []string) error {
	printer := newPrinter(cmd)

	if ignore == nil {
		cfg, err := config.Load()
		if err != nil {
			return fail(printer, output.NewUserErrorWithCause(err.Error(), err))
		}
		ignore = cfg.Ignore
	}

	plans, err := course.Plan(inDir, ignore)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"lessons": plans})
	}

	if len(plans) == 0 {
		printer.Println("No lessons.")
		return nil
	}
	for _, plan := range plans {
		printLessonPlan(printer, plan)
	}
	return nil
}

// printLessonPlan renders one lesson as a titled section table.
func printLessonPlan(printer *output.Printer, plan course.LessonPlan) {
	printer.Section(plan.Name)

	rows := make([][]string, 0, len(plan.Sections))
	for i, section := range plan.Sections {
		rows = append(rows, []string{strconv.Itoa(i + 1), filepath.Base(section.Path), section.Title})
	}
	if len(rows) > 0 {
		printer.Table([]string{"#", "SECTION", "TITLE"}, rows)
	}

	if plan.HasExercises {
		printer.KeyValue("Exercises", fmt.Sprintf("%d", plan.Exercises))
	}
	printer.KeyValue("Output", plan.Output)
}
