// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package syncutil

// Set is like a Go map[V]struct{} but is safe for concurrent use by multiple
// goroutines without additional locking or coordination. The zero Set is
// empty and ready for use.
type Set[V comparable] struct {
	m Map[V, struct{}]
}

// dummyValue is the placeholder value stored for every member of a Set.
var dummyValue = new(struct{})

// Contains returns whether the set contains the value.
func (s *Set[V]) Contains(value V) bool {
	_, ok := s.m.Load(value)
	return ok
}

// Add adds the value to the set. Returns true if the value was added, false
// if it was already present.
func (s *Set[V]) Add(value V) bool {
	_, loaded := s.m.LoadOrStore(value, dummyValue)
	return !loaded
}
