// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package nstree provides a data structure for storing and retrieving
// catalog entries by ID and by name.
package nstree

import (
	"github.com/cockroachdb/oidcat/pkg/sql/catalog"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/util/iterutil"
	"github.com/google/btree"
)

// degree is the btree degree of both indexes.
const degree = 8

// EntryIterator is used to iterate name entries.
type EntryIterator func(entry catalog.NameEntry) error

// NameMap is a lookup structure for catalog entries. Entries are stored once,
// keyed by ID; a secondary index maps names to IDs. Every mutation goes
// through Add or remove, which update both indexes together, so each name in
// the index resolves to a stored entry.
//
// The entries' names and IDs are indexed; they must not change or else the
// index will be corrupted. Safe for use without initialization. Not safe for
// concurrent use.
type NameMap struct {
	byID   *btree.BTreeG[catalog.NameEntry]
	byName *btree.BTreeG[nameIndexEntry]
}

type nameIndexEntry struct {
	name string
	id   catid.DescID
}

// idKey is a search key for the byID index.
type idKey catid.DescID

func (k idKey) GetID() catid.DescID { return catid.DescID(k) }
func (k idKey) GetName() string     { return "" }

func lessByID(a, b catalog.NameEntry) bool { return a.GetID() < b.GetID() }

func lessByName(a, b nameIndexEntry) bool { return a.name < b.name }

// Add inserts the entry unless its name or its ID is already present. It
// returns nil on success, or the resident entry that blocked the insertion.
// A name conflict is reported in preference to an ID conflict; callers tell
// them apart by comparing names.
func (dt *NameMap) Add(e catalog.NameEntry) (conflict catalog.NameEntry) {
	dt.maybeInitialize()
	if existing := dt.GetByName(e.GetName()); existing != nil {
		return existing
	}
	if existing := dt.GetByID(e.GetID()); existing != nil {
		return existing
	}
	dt.byID.ReplaceOrInsert(e)
	dt.byName.ReplaceOrInsert(nameIndexEntry{name: e.GetName(), id: e.GetID()})
	return nil
}

// Remove removes the entry with the given ID from the tree and returns it if
// it exists.
func (dt *NameMap) Remove(id catid.DescID) catalog.NameEntry {
	if !dt.initialized() {
		return nil
	}
	e, ok := dt.byID.Get(idKey(id))
	if !ok {
		return nil
	}
	dt.remove(e)
	return e
}

// RemoveByName removes the entry with the given name from the tree and
// returns it if it exists.
func (dt *NameMap) RemoveByName(name string) catalog.NameEntry {
	e := dt.GetByName(name)
	if e == nil {
		return nil
	}
	dt.remove(e)
	return e
}

func (dt *NameMap) remove(e catalog.NameEntry) {
	dt.byID.Delete(e)
	dt.byName.Delete(nameIndexEntry{name: e.GetName()})
}

// GetByID gets an entry from the tree by id.
func (dt *NameMap) GetByID(id catid.DescID) catalog.NameEntry {
	if !dt.initialized() {
		return nil
	}
	e, ok := dt.byID.Get(idKey(id))
	if !ok {
		return nil
	}
	return e
}

// GetByName gets an entry from the tree by name.
func (dt *NameMap) GetByName(name string) catalog.NameEntry {
	if !dt.initialized() {
		return nil
	}
	ne, ok := dt.byName.Get(nameIndexEntry{name: name})
	if !ok {
		return nil
	}
	return dt.GetByID(ne.id)
}

// Clear removes all entries.
func (dt *NameMap) Clear() {
	if !dt.initialized() {
		return
	}
	*dt = NameMap{}
}

// IterateByID iterates the entries by ID, ascending.
func (dt *NameMap) IterateByID(f EntryIterator) error {
	if !dt.initialized() {
		return nil
	}
	var err error
	dt.byID.Ascend(func(e catalog.NameEntry) bool {
		err = f(e)
		return err == nil
	})
	return iterutil.Map(err)
}

// IterateByName iterates the entries by name, ascending.
func (dt *NameMap) IterateByName(f EntryIterator) error {
	if !dt.initialized() {
		return nil
	}
	var err error
	dt.byName.Ascend(func(ne nameIndexEntry) bool {
		err = f(dt.GetByID(ne.id))
		return err == nil
	})
	return iterutil.Map(err)
}

// Len returns the number of entries in the tree.
func (dt *NameMap) Len() int {
	if !dt.initialized() {
		return 0
	}
	return dt.byID.Len()
}

func (dt *NameMap) initialized() bool {
	return dt.byID != nil && dt.byName != nil
}

func (dt *NameMap) maybeInitialize() {
	if dt.initialized() {
		return
	}
	*dt = NameMap{
		byID:   btree.NewG[catalog.NameEntry](degree, lessByID),
		byName: btree.NewG[nameIndexEntry](degree, lessByName),
	}
}
