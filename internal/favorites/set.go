// Package favorites keeps the user-chosen set of item ids and persists it through a key-value store.
package favorites

import (
	"maps"
	"slices"
)

// Set is a set of item ids that remembers the order ids were added in.
// The zero value is an empty set ready to use.
type Set struct {
	ids   map[int64]struct{}
	order []int64
}

// NewSet returns a set holding ids in the given order. Repeated ids keep their first position.
func NewSet(ids ...int64) Set {
	s := Set{ids: make(map[int64]struct{}, len(ids)), order: make([]int64, 0, len(ids))}
	for _, id := range ids {
		if _, ok := s.ids[id]; ok {
			continue
		}
		s.ids[id] = struct{}{}
		s.order = append(s.order, id)
	}
	return s
}

// Toggle appends id when it is absent and removes it when present.
// It reports whether id is a member afterwards.
func (s *Set) Toggle(id int64) bool {
	if s.ids == nil {
		s.ids = make(map[int64]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		s.order = slices.DeleteFunc(s.order, func(v int64) bool { return v == id })
		return false
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

func (s Set) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s Set) Len() int {
	return len(s.ids)
}

// IDs returns the members in the order they were added. The result is never nil.
func (s Set) IDs() []int64 {
	ids := make([]int64, len(s.order))
	copy(ids, s.order)
	return ids
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	return Set{ids: maps.Clone(s.ids), order: slices.Clone(s.order)}
}
