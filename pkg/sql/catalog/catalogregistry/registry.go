// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package catalogregistry provides Registry, the directory of databases
// that query execution and DDL resolve database IDs through.
package catalogregistry

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/oidcat/pkg/base"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/dbdesc"
	"github.com/cockroachdb/oidcat/pkg/util/log"
	"github.com/cockroachdb/oidcat/pkg/util/metric"
	"github.com/cockroachdb/oidcat/pkg/util/syncutil"
)

// ErrRegistryClosed is returned by operations on a registry after Close.
var ErrRegistryClosed = errors.New("catalog registry is closed")

// ErrInvalidID is returned when asked for the database with the invalid ID.
var ErrInvalidID = errors.New("invalid database ID")

// TestingKnobs provide fine-grained control over the registry for tests.
type TestingKnobs struct {
	// BeforeDatabaseInsert is called after a candidate Database has been
	// constructed and before it is published.
	BeforeDatabaseInsert func(id catid.DescID)
}

// ModuleTestingKnobs is part of the base.ModuleTestingKnobs interface.
func (*TestingKnobs) ModuleTestingKnobs() {}

var _ base.ModuleTestingKnobs = (*TestingKnobs)(nil)

// Registry maps database IDs to databases. There is at most one Database per
// ID, and once published the Database for an ID is never replaced until the
// registry is closed.
//
// A Registry is constructed once per engine and handed to the components that
// need it. Its lifetime is explicit: Close drops every database's tables and
// empties the directory.
type Registry struct {
	metrics *catalog.Metrics
	knobs   TestingKnobs

	databases syncutil.Map[catid.DescID, dbdesc.Database]

	// closeMu is read-locked by operations that publish databases and
	// write-locked by Close, so that nothing is published into a registry
	// being torn down.
	closeMu struct {
		syncutil.RWMutex
		closed bool
	}
}

// NewRegistry constructs a Registry, registers its metrics in reg (if
// non-nil), and creates the configured bootstrap databases.
func NewRegistry(ctx context.Context, cfg base.CatalogConfig, reg *metric.Registry) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Registry{metrics: catalog.MakeMetrics()}
	if knobs, ok := cfg.Knobs.Registry.(*TestingKnobs); ok && knobs != nil {
		r.knobs = *knobs
	}
	if reg != nil {
		if err := reg.AddMetricStruct(r.metrics); err != nil {
			return nil, err
		}
	}
	for _, id := range cfg.BootstrapDatabases {
		if _, err := r.GetOrCreateDatabase(ctx, id); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Metrics returns the registry's metrics, which are shared with its
// databases.
func (r *Registry) Metrics() *catalog.Metrics {
	return r.metrics
}

func annotateCtx(ctx context.Context, id catid.DescID) context.Context {
	return logtags.AddTag(logtags.AddTag(ctx, "catalog", nil), "db", id)
}

// GetOrCreateDatabase returns the Database for id, creating it if it does not
// exist yet. Concurrent callers asking for the same id all get the same
// Database; if several construct a candidate at once, exactly one candidate
// is published and the others are discarded.
func (r *Registry) GetOrCreateDatabase(ctx context.Context, id catid.DescID) (*dbdesc.Database, error) {
	if id == catid.InvalidDescID {
		return nil, ErrInvalidID
	}
	r.closeMu.RLock()
	defer r.closeMu.RUnlock()
	if r.closeMu.closed {
		return nil, ErrRegistryClosed
	}
	if db, ok := r.databases.Load(id); ok {
		return db, nil
	}

	candidate := dbdesc.NewDatabase(id, r.metrics)
	if fn := r.knobs.BeforeDatabaseInsert; fn != nil {
		fn(id)
	}
	db, loaded := r.databases.LoadOrStore(id, candidate)
	if loaded {
		log.VEventf(annotateCtx(ctx, id), 2, "lost race creating database; discarding candidate")
		return db, nil
	}
	r.metrics.DatabasesCreated.Inc(1)
	r.metrics.Databases.Inc(1)
	log.VEventf(annotateCtx(ctx, id), 1, "created database")
	return db, nil
}

// LookupDatabase returns the Database for id if it has been created.
func (r *Registry) LookupDatabase(id catid.DescID) (*dbdesc.Database, bool) {
	return r.databases.Load(id)
}

// Databases returns the databases ordered by ID.
func (r *Registry) Databases() []*dbdesc.Database {
	var dbs []*dbdesc.Database
	r.databases.Range(func(_ catid.DescID, db *dbdesc.Database) bool {
		dbs = append(dbs, db)
		return true
	})
	slices.SortFunc(dbs, func(a, b *dbdesc.Database) int {
		switch {
		case a.GetID() < b.GetID():
			return -1
		case a.GetID() > b.GetID():
			return 1
		default:
			return 0
		}
	})
	return dbs
}

// DatabaseCount returns the number of databases.
func (r *Registry) DatabaseCount() int {
	n := 0
	r.databases.Range(func(catid.DescID, *dbdesc.Database) bool {
		n++
		return true
	})
	return n
}

// Close tears the registry down: every database is dropped and the directory
// is emptied. Subsequent calls to GetOrCreateDatabase fail with
// ErrRegistryClosed. Databases handed out earlier still answer lookups but
// reject registrations with catalog.ErrDatabaseDropped. Close is idempotent.
func (r *Registry) Close(ctx context.Context) {
	r.closeMu.Lock()
	defer r.closeMu.Unlock()
	if r.closeMu.closed {
		return
	}
	r.closeMu.closed = true

	var numDBs, numTables int
	r.databases.Range(func(id catid.DescID, db *dbdesc.Database) bool {
		numTables += db.Drop(annotateCtx(ctx, id))
		r.databases.Delete(id)
		numDBs++
		return true
	})
	r.metrics.Databases.Dec(int64(numDBs))
	log.Infof(logtags.AddTag(ctx, "catalog", nil),
		"closed catalog registry: released %d databases and %d tables", numDBs, numTables)
}
