package manifest

import "path/filepath"

// Walker resolves manifest children into paths.
type Walker struct {
	ignore IgnoreSet
}

// NewWalker creates a Walker that skips entries matched by ignore.
// A nil set ignores nothing.
func NewWalker(ignore IgnoreSet) *Walker {
	if ignore == nil {
		ignore = NewIgnoreSet()
	}
	return &Walker{ignore: ignore}
}

// Ignore returns the walker's ignore set. Callers may extend it.
func (w *Walker) Ignore() IgnoreSet {
	return w.ignore
}

// Children loads <dir>/entry.yml and returns the non-ignored entries under
// key, joined to dir, in manifest order.
func (w *Walker) Children(dir string, key Key) ([]string, error) {
	m, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return w.resolve(m, key)
}

func (w *Walker) resolve(m *Manifest, key Key) ([]string, error) {
	entries, err := m.Entries(key)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, name := range entries {
		path := filepath.Join(m.Dir, name)
		if w.ignore.Match(name, path) {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Lessons loads the root manifest, merges its ignore list into the walker
// and returns the lesson directories.
func (w *Walker) Lessons(root string) ([]string, error) {
	m, err := Load(root)
	if err != nil {
		return nil, err
	}
	w.ignore.Add(m.Ignore...)
	return w.resolve(m, KeyLessons)
}

// Sections returns the section paths of a lesson directory.
func (w *Walker) Sections(lessonDir string) ([]string, error) {
	return w.Children(lessonDir, KeySections)
}
