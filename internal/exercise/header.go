package exercise

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Delimiter opens and closes an exercise header.
const Delimiter = "---"

// Header is the parsed key/value block at the top of an exercise file.
type Header struct {
	Title  string `json:"title"`
	Demand string `json:"demand"`

	// Fields holds every key in the block, including title and demand.
	Fields map[string]string `json:"-"`

	// End is the 0-based line index of the closing delimiter.
	End int `json:"-"`
}

// Validate checks the required fields.
func (h Header) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Title, validation.Required),
		validation.Field(&h.Demand, validation.Required),
	)
}

// Exercise is a parsed exercise file.
type Exercise struct {
	Header Header
	Body   string
}

// ParseHeader scans the header block at the start of text.
func ParseHeader(text string) (*Header, error) {
	lines := strings.Split(text, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) {
		return nil, &ParseError{Reason: ReasonMissingOpen, Detail: "empty file"}
	}
	if strings.TrimSpace(lines[start]) != Delimiter {
		return nil, &ParseError{Line: start + 1, Reason: ReasonMissingOpen}
	}

	// Trailing blank lines cannot hold the closing delimiter.
	last := len(lines)
	for last > start+1 && strings.TrimSpace(lines[last-1]) == "" {
		last--
	}

	fields := make(map[string]string)
	for i := start + 1; i < last; i++ {
		line := strings.TrimSpace(lines[i])
		if line == Delimiter {
			header := &Header{
				Title:  fields["title"],
				Demand: fields["demand"],
				Fields: fields,
				End:    i,
			}
			if err := header.Validate(); err != nil {
				return nil, &ParseError{Line: i + 1, Reason: ReasonMissingField, Err: err}
			}
			return header, nil
		}

		key, value, ok := splitField(line)
		if !ok {
			return nil, &ParseError{Line: i + 1, Reason: ReasonMalformedField, Detail: fmt.Sprintf("%q", line)}
		}
		fields[key] = value
	}

	return nil, &ParseError{Line: last, Reason: ReasonUnterminated}
}

// splitField splits a trimmed "key: value" line on its first ": ".
func splitField(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, ": ")
	if !ok || strings.TrimSpace(key) == "" {
		return "", "", false
	}
	return strings.TrimSpace(key), value, true
}

// Parse splits text into its header and body. The body is every line after
// the closing delimiter, unchanged.
func Parse(text string) (*Exercise, error) {
	header, err := ParseHeader(text)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(text, "\n")
	return &Exercise{
		Header: *header,
		Body:   strings.Join(lines[header.End+1:], "\n"),
	}, nil
}

// Load reads and parses an exercise file.
func Load(path string) (*Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading exercise %s: %w", path, err)
	}
	ex, err := Parse(string(data))
	if err != nil {
		return nil, withPath(err, path)
	}
	return ex, nil
}
