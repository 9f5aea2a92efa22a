// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package nstree

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/util/iterutil"
	"github.com/stretchr/testify/require"
)

type entry struct {
	id   catid.DescID
	name string
}

func (e *entry) GetID() catid.DescID { return e.id }
func (e *entry) GetName() string     { return e.name }

func names(t *testing.T, nm *NameMap, byName bool) []string {
	var res []string
	f := func(e catalog.NameEntry) error {
		res = append(res, e.GetName())
		return nil
	}
	if byName {
		require.NoError(t, nm.IterateByName(f))
	} else {
		require.NoError(t, nm.IterateByID(f))
	}
	return res
}

func TestNameMapZeroValue(t *testing.T) {
	var nm NameMap
	require.Nil(t, nm.GetByID(1))
	require.Nil(t, nm.GetByName("a"))
	require.Nil(t, nm.Remove(1))
	require.Nil(t, nm.RemoveByName("a"))
	require.Equal(t, 0, nm.Len())
	require.Nil(t, names(t, &nm, true))
	nm.Clear()
}

func TestNameMapAddAndGet(t *testing.T) {
	var nm NameMap
	orders := &entry{id: 3, name: "orders"}
	users := &entry{id: 1, name: "users"}
	require.Nil(t, nm.Add(orders))
	require.Nil(t, nm.Add(users))

	require.Same(t, orders, nm.GetByName("orders"))
	require.Same(t, orders, nm.GetByID(3))
	require.Same(t, users, nm.GetByID(1))
	require.Nil(t, nm.GetByName("missing"))
	require.Nil(t, nm.GetByID(999))
	require.Equal(t, 2, nm.Len())

	require.Equal(t, []string{"users", "orders"}, names(t, &nm, false))
	require.Equal(t, []string{"orders", "users"}, names(t, &nm, true))
}

func TestNameMapConflicts(t *testing.T) {
	var nm NameMap
	orders := &entry{id: 3, name: "orders"}
	require.Nil(t, nm.Add(orders))

	// Same name, different ID.
	require.Same(t, orders, nm.Add(&entry{id: 9, name: "orders"}))
	require.Nil(t, nm.GetByID(9))

	// Same ID, different name.
	require.Same(t, orders, nm.Add(&entry{id: 3, name: "customers"}))
	require.Nil(t, nm.GetByName("customers"))

	require.Equal(t, 1, nm.Len())
	require.Same(t, orders, nm.GetByName("orders"))
}

func TestNameMapRemove(t *testing.T) {
	var nm NameMap
	a := &entry{id: 1, name: "a"}
	b := &entry{id: 2, name: "b"}
	require.Nil(t, nm.Add(a))
	require.Nil(t, nm.Add(b))

	require.Same(t, a, nm.Remove(1))
	require.Nil(t, nm.GetByName("a"))
	require.Nil(t, nm.Remove(1))

	require.Same(t, b, nm.RemoveByName("b"))
	require.Nil(t, nm.GetByID(2))
	require.Equal(t, 0, nm.Len())

	// Both the name and the ID can be reused after removal.
	require.Nil(t, nm.Add(&entry{id: 1, name: "b"}))
	require.Equal(t, []string{"b"}, names(t, &nm, true))

	nm.Clear()
	require.Equal(t, 0, nm.Len())
	require.Nil(t, nm.GetByName("b"))
}

func TestNameMapIterationStop(t *testing.T) {
	var nm NameMap
	for i, n := range []string{"c", "a", "b"} {
		require.Nil(t, nm.Add(&entry{id: catid.DescID(i + 1), name: n}))
	}
	var seen []string
	require.NoError(t, nm.IterateByName(func(e catalog.NameEntry) error {
		seen = append(seen, e.GetName())
		if len(seen) == 2 {
			return iterutil.StopIteration()
		}
		return nil
	}))
	require.Equal(t, []string{"a", "b"}, seen)

	boom := errors.New("boom")
	require.ErrorIs(t, nm.IterateByID(func(catalog.NameEntry) error { return boom }), boom)
}
