// Package main provides the entry point for the coursecat CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/coursecat/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode reads the --color persistent flag, defaulting to auto.
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return output.ColorAuto
	}
	return flag.Value.String()
}

// newPrinter builds the printer for a command: results on stdout, errors
// and progress on stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(out))
	return output.NewPrinter(out, isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the coursecat CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coursecat",
		Short: "Concatenate a manifest-driven course tree into per-lesson markdown",
		Long: `coursecat - Build one markdown file per lesson from a course tree.

A course is a directory tree with an entry.yml at every level:
  - the root entry.yml lists lessons in order
  - each lesson's entry.yml lists its sections in order
  - the reserved section "excs" appends the exercises indexed in excs.md

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				err := output.NewUserError("no command specified. Run 'coursecat --help' for usage")
				newPrinter(cmd).Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Colorize output: auto, always or never")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})

	addGroupedCommand(cmd, newBuildCmd(), "core")
	addGroupedCommand(cmd, newPlanCmd(), "core")
	addGroupedCommand(cmd, newServeCmd(), "agent")

	return cmd
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
