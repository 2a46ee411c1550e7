package exercise

import (
	"errors"
	"fmt"
)

// Reason identifies why an exercise file or index failed to parse.
type Reason int

// Parse failure reasons.
const (
	ReasonMissingOpen Reason = iota + 1
	ReasonMalformedField
	ReasonUnterminated
	ReasonMissingField
	ReasonMalformedReference
	ReasonOrphanReference
)

func (r Reason) String() string {
	switch r {
	case ReasonMissingOpen:
		return "header does not start with " + Delimiter
	case ReasonMalformedField:
		return "header line is not \"key: value\""
	case ReasonUnterminated:
		return "header did not end with " + Delimiter
	case ReasonMissingField:
		return "header is missing a required field"
	case ReasonMalformedReference:
		return "line is not an exercise reference"
	case ReasonOrphanReference:
		return "exercise reference before any ## subtitle"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// ErrIndexNotFound is returned when a lesson lists excs but has no index file.
var ErrIndexNotFound = errors.New("exercise index not found")

// ParseError reports a malformed header or index line.
// Line is 1-based; zero means the failure is not tied to a line.
type ParseError struct {
	Path   string
	Line   int
	Reason Reason
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "<input>"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	msg := loc + ": " + e.Reason.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// withPath fills in the source path of a ParseError produced by a
// text-only parser. Other errors pass through untouched.
func withPath(err error, path string) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Path == "" {
		parseErr.Path = path
	}
	return err
}
