// SPDX-License-Identifier: MPL-2.0

// Package orderedset provides a small array-backed set that keeps values in
// first-insertion order. Command text built from a Set is reproducible no
// matter how often a value is re-added.
package orderedset

// Set is an ordered collection of unique comparable values.
// The zero value is an empty set ready for use.
type Set[T comparable] struct {
	items []T
	index map[T]struct{}
}

// Add appends every value not already present.
func (s *Set[T]) Add(values ...T) {
	if s.index == nil {
		s.index = make(map[T]struct{}, len(values))
	}
	for _, v := range values {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = struct{}{}
		s.items = append(s.items, v)
	}
}

// Values returns a copy of the values in insertion order, or nil when the
// set is empty.
func (s *Set[T]) Values() []T {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Clear removes all values.
func (s *Set[T]) Clear() {
	s.items = nil
	s.index = nil
}
