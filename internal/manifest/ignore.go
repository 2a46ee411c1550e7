package manifest

import "path/filepath"

// DefaultIgnore lists the tokens skipped when no --ignore flag is given.
// The exercise index sits next to the sections but is never one of them.
var DefaultIgnore = []string{"excs.md"}

// IgnoreSet holds path or basename tokens excluded from traversal.
type IgnoreSet map[string]struct{}

// NewIgnoreSet builds a set from the given tokens.
func NewIgnoreSet(tokens ...string) IgnoreSet {
	set := make(IgnoreSet, len(tokens))
	set.Add(tokens...)
	return set
}

// Add inserts tokens into the set. Empty tokens are dropped.
func (s IgnoreSet) Add(tokens ...string) {
	for _, token := range tokens {
		if token == "" {
			continue
		}
		s[filepath.Clean(token)] = struct{}{}
	}
}

// Match reports whether a manifest entry should be skipped. name is the
// entry as written in entry.yml; path is the entry joined to its directory.
func (s IgnoreSet) Match(name, path string) bool {
	if len(s) == 0 {
		return false
	}
	for _, candidate := range []string{name, path, filepath.Base(path)} {
		if _, ok := s[filepath.Clean(candidate)]; ok {
			return true
		}
	}
	return false
}
