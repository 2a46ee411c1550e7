package exercise

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// referenceMarker precedes an exercise identifier in an index line.
const referenceMarker = "excs>"

// Group is one subtitle of the index with its exercise identifiers.
type Group struct {
	Subtitle string
	IDs      []string
}

// Index maps subtitles to exercise identifiers, in the order the subtitles
// first appeared.
type Index struct {
	groups   []Group
	position map[string]int
}

func newIndex() *Index {
	return &Index{position: make(map[string]int)}
}

// Groups returns the subtitles in order.
func (ix *Index) Groups() []Group {
	return ix.groups
}

// Count returns the total number of references.
func (ix *Index) Count() int {
	n := 0
	for _, g := range ix.groups {
		n += len(g.IDs)
	}
	return n
}

// startGroup makes subtitle current. A repeated subtitle keeps its original
// position but starts over with an empty list.
func (ix *Index) startGroup(subtitle string) int {
	if pos, ok := ix.position[subtitle]; ok {
		ix.groups[pos].IDs = []string{}
		return pos
	}
	ix.position[subtitle] = len(ix.groups)
	ix.groups = append(ix.groups, Group{Subtitle: subtitle, IDs: []string{}})
	return len(ix.groups) - 1
}

// ScanIndex reads index lines from r. Lines may be of any length.
func ScanIndex(r io.Reader) (*Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}

	ix := newIndex()
	current := -1

	for i, line := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		line = strings.TrimSuffix(line, "\r")

		if subtitle, ok := parseSubtitle(line); ok {
			current = ix.startGroup(subtitle)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		id, ok := extractReference(trimmed)
		if !ok {
			return nil, &ParseError{Line: lineNo, Reason: ReasonMalformedReference, Detail: fmt.Sprintf("%q", trimmed)}
		}
		if current < 0 {
			return nil, &ParseError{Line: lineNo, Reason: ReasonOrphanReference, Detail: id}
		}
		ix.groups[current].IDs = append(ix.groups[current].IDs, id)
	}
	return ix, nil
}

// LoadIndex reads and scans an index file.
func LoadIndex(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, path)
		}
		return nil, fmt.Errorf("opening index %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	ix, err := ScanIndex(file)
	if err != nil {
		return nil, withPath(err, path)
	}
	return ix, nil
}

// parseSubtitle recognises a "## " line. Deeper headings are not subtitles.
func parseSubtitle(line string) (string, bool) {
	if !strings.HasPrefix(line, "##") || strings.HasPrefix(line, "###") {
		return "", false
	}
	return strings.TrimSpace(line[2:]), true
}

// extractReference returns the identifier between the last "excs>" and the
// last "]" after it.
func extractReference(line string) (string, bool) {
	start := strings.LastIndex(line, referenceMarker)
	if start < 0 {
		return "", false
	}
	rest := line[start+len(referenceMarker):]
	end := strings.LastIndex(rest, "]")
	if end < 0 {
		return "", false
	}
	id := strings.TrimSpace(rest[:end])
	if id == "" {
		return "", false
	}
	return id, true
}
