package main

import (
	"errors"

	"github.com/gorewood/coursecat/internal/course"
	"github.com/gorewood/coursecat/internal/exercise"
	"github.com/gorewood/coursecat/internal/manifest"
	"github.com/gorewood/coursecat/internal/output"
)

// classifyError maps build failures onto CLI exit codes.
func classifyError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	if errors.Is(err, course.ErrOutputExists) {
		conflict := output.NewConflictError(err.Error() + " (use --force to overwrite)")
		conflict.Cause = err
		return conflict
	}

	var cfgErr *manifest.ConfigError
	var parseErr *exercise.ParseError
	if errors.As(err, &cfgErr) || errors.As(err, &parseErr) || errors.Is(err, exercise.ErrIndexNotFound) {
		return output.NewUserErrorWithCause(err.Error(), err)
	}

	return output.NewSystemErrorWithCause(err.Error(), err)
}

// fail prints err and returns it as a classified ExitError.
func fail(printer *output.Printer, err error) error {
	exitErr := classifyError(err)
	printer.Error(exitErr)
	return exitErr
}
