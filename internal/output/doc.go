// Package output provides structured output handling for the coursecat CLI.
//
// Every command writes through a Printer, which renders either styled
// human-readable text or JSON depending on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Built 3 lessons"})
//	printer.Error(err)
//
// # Progress and warnings
//
// The Printer doubles as the reporter handed to the course builder.
// Info lines are progress chatter and are dropped in JSON mode; Warn lines
// (for example, an exercise file referenced by excs.md that does not exist)
// are emitted in both modes:
//
//	printer.Info("lesson %s", name)
//	printer.Warn("%s does not exist", path)
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Bad args, missing manifest, malformed exercise
//	output.ExitSystemError // 2: I/O failure
//	output.ExitConflict    // 3: Output directory exists without --force
//
// Errors built with NewUserError, NewSystemError and NewConflictError carry
// these codes through to the process exit status.
package output
