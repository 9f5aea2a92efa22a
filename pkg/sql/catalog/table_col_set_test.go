// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalog

import (
	"testing"

	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/stretchr/testify/require"
)

func TestTableColSet(t *testing.T) {
	var s TableColSet
	require.True(t, s.Empty())
	require.False(t, s.Contains(1))
	require.Nil(t, s.Ordered())
	require.Equal(t, "()", s.String())

	s = MakeTableColSet(5, 1, 3, 1)
	require.False(t, s.Empty())
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(3))
	require.False(t, s.Contains(2))
	require.Equal(t, []catid.ColumnID{1, 3, 5}, s.Ordered())
	require.Equal(t, "(1,3,5)", s.String())
}
