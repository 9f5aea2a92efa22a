// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package dbdesc contains Database, the per-database table directory of the
// catalog.
package dbdesc

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/nstree"
	"github.com/cockroachdb/oidcat/pkg/util/log"
	"github.com/cockroachdb/oidcat/pkg/util/syncutil"
	"github.com/cockroachdb/redact"
)

// conflictLogLimiter rate limits the warnings about rejected registrations.
var conflictLogLimiter = log.Every(10 * time.Second)

// Database maps table names and table IDs to the tables of one database.
//
// Lookups take the read lock and may run concurrently with each other;
// registrations and removals take the write lock. A registration is visible
// to every lookup that starts after it returns.
//
// The Database references tables without owning them; see catalog.Table.
type Database struct {
	id      catid.DescID
	metrics *catalog.Metrics

	mu struct {
		syncutil.RWMutex
		tables nstree.NameMap
		// dropped is set by Drop. A dropped database rejects registrations.
		dropped bool
	}
}

// NewDatabase constructs an empty Database. If metrics is nil the database
// keeps private, unexported metrics.
func NewDatabase(id catid.DescID, metrics *catalog.Metrics) *Database {
	if metrics == nil {
		metrics = catalog.MakeMetrics()
	}
	return &Database{id: id, metrics: metrics}
}

// GetID returns the database's ID.
func (db *Database) GetID() catid.DescID {
	return db.id
}

// AddTable registers the table under its name and ID. It fails without
// modifying the database if the name is already registered
// (catalog.ErrTableNameExists) or if the ID is registered under a different
// name (catalog.ErrTableIDExists). Once the database has been dropped every
// registration fails with catalog.ErrDatabaseDropped.
func (db *Database) AddTable(ctx context.Context, t catalog.Table) error {
	if t == nil {
		return errors.AssertionFailedf("cannot register a nil table in database %d", db.id)
	}
	if t.GetID() == catid.InvalidDescID {
		return errors.AssertionFailedf(
			"cannot register table %q with an invalid ID in database %d", t.GetName(), db.id)
	}
	db.mu.Lock()
	if db.mu.dropped {
		db.mu.Unlock()
		return catalog.NewDatabaseDroppedError(db.id, t.GetName())
	}
	conflict := db.mu.tables.Add(t)
	db.mu.Unlock()

	if conflict == nil {
		db.metrics.TablesRegistered.Inc(1)
		db.metrics.Tables.Inc(1)
		log.VEventf(ctx, 2, "registered table %q with ID %d", t.GetName(), t.GetID())
		return nil
	}
	db.metrics.RegistrationConflicts.Inc(1)
	var err error
	if conflict.GetName() == t.GetName() {
		err = catalog.NewTableNameExistsError(db.id, t.GetName(), conflict.GetID())
	} else {
		err = catalog.NewTableIDExistsError(db.id, t.GetID(), t.GetName(), conflict.GetName())
	}
	if conflictLogLimiter.ShouldLog() {
		log.Warningf(ctx, "%v", err)
	} else {
		log.VEventf(ctx, 2, "%v", err)
	}
	return err
}

// RegisterTable is like AddTable but reports only whether the table was
// inserted.
func (db *Database) RegisterTable(ctx context.Context, t catalog.Table) bool {
	return db.AddTable(ctx, t) == nil
}

// GetOrRegisterTable atomically returns the table registered under t's name
// or, if there is none, registers t. The boolean reports whether t was
// inserted. If the name is free but t's ID is in use by another name, the
// registration fails with catalog.ErrTableIDExists.
func (db *Database) GetOrRegisterTable(
	ctx context.Context, t catalog.Table,
) (_ catalog.Table, inserted bool, _ error) {
	if t == nil {
		return nil, false, errors.AssertionFailedf("cannot register a nil table in database %d", db.id)
	}
	// The common case is that the table is already there.
	if existing, ok := db.LookupByName(t.GetName()); ok {
		return existing, false, nil
	}
	for {
		err := db.AddTable(ctx, t)
		if err == nil {
			return t, true, nil
		}
		if !errors.Is(err, catalog.ErrTableNameExists) {
			return nil, false, err
		}
		// Lost a race with another registration of the same name. The winner
		// may have been removed again already, hence the loop.
		if existing, ok := db.LookupByName(t.GetName()); ok {
			return existing, false, nil
		}
	}
}

// LookupByName returns the table registered under name.
func (db *Database) LookupByName(name string) (catalog.Table, bool) {
	db.mu.RLock()
	e := db.mu.tables.GetByName(name)
	db.mu.RUnlock()
	db.metrics.RecordLookup(e != nil)
	if e == nil {
		return nil, false
	}
	return e.(catalog.Table), true
}

// LookupByID returns the table registered under id.
func (db *Database) LookupByID(id catid.DescID) (catalog.Table, bool) {
	db.mu.RLock()
	e := db.mu.tables.GetByID(id)
	db.mu.RUnlock()
	db.metrics.RecordLookup(e != nil)
	if e == nil {
		return nil, false
	}
	return e.(catalog.Table), true
}

// TableCount returns the number of registered tables.
func (db *Database) TableCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.mu.tables.Len()
}

// Tables returns the registered tables ordered by ID.
func (db *Database) Tables() []catalog.Table {
	db.mu.RLock()
	defer db.mu.RUnlock()
	tables := make([]catalog.Table, 0, db.mu.tables.Len())
	db.forEachTableRLocked(func(t catalog.Table) {
		tables = append(tables, t)
	})
	return tables
}

// TableNames returns the registered table names in ascending order.
func (db *Database) TableNames() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	names := make([]string, 0, db.mu.tables.Len())
	_ = db.mu.tables.IterateByName(func(e catalog.NameEntry) error {
		names = append(names, e.GetName())
		return nil
	})
	return names
}

// RemoveTableByName forgets the table registered under name. The table
// itself is left untouched. Returns whether a table was removed.
func (db *Database) RemoveTableByName(ctx context.Context, name string) bool {
	db.mu.Lock()
	removed := db.mu.tables.RemoveByName(name)
	db.mu.Unlock()
	return db.onRemoved(ctx, removed)
}

// RemoveTableByID forgets the table registered under id. The table itself
// is left untouched. Returns whether a table was removed.
func (db *Database) RemoveTableByID(ctx context.Context, id catid.DescID) bool {
	db.mu.Lock()
	removed := db.mu.tables.Remove(id)
	db.mu.Unlock()
	return db.onRemoved(ctx, removed)
}

func (db *Database) onRemoved(ctx context.Context, removed catalog.NameEntry) bool {
	if removed == nil {
		return false
	}
	db.metrics.TablesRemoved.Inc(1)
	db.metrics.Tables.Dec(1)
	log.VEventf(ctx, 2, "removed table %q with ID %d", removed.GetName(), removed.GetID())
	return true
}

// DropAllTables forgets every registered table and returns how many there
// were. The tables themselves are left to their owner. The database stays
// usable.
func (db *Database) DropAllTables(ctx context.Context) int {
	return db.clear(ctx, false /* drop */)
}

// Drop forgets every registered table, like DropAllTables, and marks the
// database dropped so that later registrations fail. It returns how many
// tables were forgotten.
func (db *Database) Drop(ctx context.Context) int {
	return db.clear(ctx, true /* drop */)
}

// Dropped returns whether Drop has been called.
func (db *Database) Dropped() bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.mu.dropped
}

func (db *Database) clear(ctx context.Context, drop bool) int {
	db.mu.Lock()
	n := db.clearLocked(drop)
	db.mu.Unlock()
	if n > 0 {
		db.metrics.TablesRemoved.Inc(int64(n))
		db.metrics.Tables.Dec(int64(n))
		log.VEventf(ctx, 2, "dropped %d tables from database %d", n, db.id)
	}
	return n
}

func (db *Database) clearLocked(drop bool) int {
	db.mu.AssertHeld()
	n := db.mu.tables.Len()
	db.mu.tables.Clear()
	if drop {
		db.mu.dropped = true
	}
	return n
}

// forEachTableRLocked calls f for every table in ID order.
func (db *Database) forEachTableRLocked(f func(t catalog.Table)) {
	db.mu.AssertRHeld()
	_ = db.mu.tables.IterateByID(func(e catalog.NameEntry) error {
		f(e.(catalog.Table))
		return nil
	})
}

// SafeFormat implements the redact.SafeFormatter interface.
func (db *Database) SafeFormat(w redact.SafePrinter, _ rune) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	w.Printf("Database[%d]: %d tables {", db.id, redact.SafeInt(db.mu.tables.Len()))
	first := true
	db.forEachTableRLocked(func(t catalog.Table) {
		if !first {
			w.SafeString(", ")
		}
		first = false
		w.Printf("%d: %s", t.GetID(), t.GetName())
	})
	w.SafeRune('}')
}

func (db *Database) String() string {
	return redact.StringWithoutMarkers(db)
}

var _ redact.SafeFormatter = (*Database)(nil)
