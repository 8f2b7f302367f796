package browser

import "sort"

// SelectionSet holds the identifiers of the template files picked for export.
// Identifiers are root-relative paths, so membership is stable across
// rerenders. Directories are never members; Toggle is the only mutator.
type SelectionSet struct {
	paths map[string]struct{}
}

// NewSelectionSet returns an empty set.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{paths: make(map[string]struct{})}
}

// Toggle flips membership for path and reports whether it is now selected.
func (s *SelectionSet) Toggle(path string) bool {
	if _, ok := s.paths[path]; ok {
		delete(s.paths, path)
		return false
	}
	s.paths[path] = struct{}{}
	return true
}

// Contains reports membership.
func (s *SelectionSet) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// Len returns the number of selected files.
func (s *SelectionSet) Len() int { return len(s.paths) }

// Values returns the selected paths sorted lexicographically.
func (s *SelectionSet) Values() []string {
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
