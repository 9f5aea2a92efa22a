// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
)

// TableColSet stores an unordered set of column ids. The zero value is an
// empty set.
type TableColSet struct {
	set map[catid.ColumnID]struct{}
}

// MakeTableColSet returns a set initialized with the given values.
func MakeTableColSet(vals ...catid.ColumnID) TableColSet {
	var res TableColSet
	for _, v := range vals {
		res.Add(v)
	}
	return res
}

// Add adds a column to the set. No-op if the column is already in the set.
func (s *TableColSet) Add(col catid.ColumnID) {
	if s.set == nil {
		s.set = make(map[catid.ColumnID]struct{})
	}
	s.set[col] = struct{}{}
}

// Contains returns true if the set contains the column.
func (s TableColSet) Contains(col catid.ColumnID) bool {
	_, ok := s.set[col]
	return ok
}

// Empty returns true if the set is empty.
func (s TableColSet) Empty() bool { return len(s.set) == 0 }

// Len returns the number of the columns in the set.
func (s TableColSet) Len() int { return len(s.set) }

// Ordered returns a slice with all the column IDs in the set, in increasing
// order.
func (s TableColSet) Ordered() []catid.ColumnID {
	if s.Empty() {
		return nil
	}
	result := make([]catid.ColumnID, 0, len(s.set))
	for c := range s.set {
		result = append(result, c)
	}
	slices.Sort(result)
	return result
}

// String returns a list representation of elements, e.g. "(1,2,5)".
func (s TableColSet) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range s.Ordered() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(c), 10))
	}
	b.WriteByte(')')
	return b.String()
}
