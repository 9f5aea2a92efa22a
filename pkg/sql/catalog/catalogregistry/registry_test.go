// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalogregistry_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/oidcat/pkg/base"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catalogregistry"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/dbdesc"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/tabledesc"
	"github.com/cockroachdb/oidcat/pkg/sql/types"
	"github.com/cockroachdb/oidcat/pkg/util/log"
	"github.com/cockroachdb/oidcat/pkg/util/metric"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestRegistry(t *testing.T, cfg base.CatalogConfig) *catalogregistry.Registry {
	t.Helper()
	r, err := catalogregistry.NewRegistry(context.Background(), cfg, nil)
	require.NoError(t, err)
	return r
}

func mustTable(t *testing.T, id catid.DescID, name string) *tabledesc.Table {
	t.Helper()
	tbl, err := tabledesc.NewTable(id, name, []tabledesc.Column{
		{ID: 1, Name: "id", Family: types.IntFamily},
	})
	require.NoError(t, err)
	return tbl
}

func TestGetOrCreateDatabase(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, base.DefaultCatalogConfig())

	_, ok := r.LookupDatabase(1)
	require.False(t, ok)

	db1, err := r.GetOrCreateDatabase(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, catid.DescID(1), db1.GetID())
	require.Equal(t, 0, db1.TableCount())

	again, err := r.GetOrCreateDatabase(ctx, 1)
	require.NoError(t, err)
	require.Same(t, db1, again)

	db2, err := r.GetOrCreateDatabase(ctx, 2)
	require.NoError(t, err)
	require.NotSame(t, db1, db2)

	looked, ok := r.LookupDatabase(2)
	require.True(t, ok)
	require.Same(t, db2, looked)

	require.Equal(t, 2, r.DatabaseCount())
	require.EqualValues(t, 2, r.Metrics().DatabasesCreated.Count())
	require.EqualValues(t, 2, r.Metrics().Databases.Value())
}

func TestGetOrCreateDatabaseInvalidID(t *testing.T) {
	r := newTestRegistry(t, base.DefaultCatalogConfig())
	_, err := r.GetOrCreateDatabase(context.Background(), catid.InvalidDescID)
	require.True(t, errors.Is(err, catalogregistry.ErrInvalidID))
	require.Equal(t, 0, r.DatabaseCount())
}

// TestTablesSurviveLookup checks that tables registered through one handle
// are visible through every later handle for the same database.
func TestTablesSurviveLookup(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, base.DefaultCatalogConfig())

	db, err := r.GetOrCreateDatabase(ctx, 5)
	require.NoError(t, err)
	orders := mustTable(t, 3, "orders")
	require.True(t, db.RegisterTable(ctx, orders))

	again, err := r.GetOrCreateDatabase(ctx, 5)
	require.NoError(t, err)
	got, ok := again.LookupByName("orders")
	require.True(t, ok)
	require.Same(t, orders, got)

	other, err := r.GetOrCreateDatabase(ctx, 6)
	require.NoError(t, err)
	_, ok = other.LookupByName("orders")
	require.False(t, ok)
}

func TestConcurrentGetOrCreate(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, base.DefaultCatalogConfig())

	const numWorkers = 32
	results := make([]*dbdesc.Database, numWorkers)
	var g errgroup.Group
	for i := 0; i < numWorkers; i++ {
		i := i
		g.Go(func() error {
			db, err := r.GetOrCreateDatabase(ctx, 7)
			results[i] = db
			return err
		})
	}
	require.NoError(t, g.Wait())
	for i := 1; i < numWorkers; i++ {
		require.Same(t, results[0], results[i])
	}
	require.Equal(t, 1, r.DatabaseCount())
	require.EqualValues(t, 1, r.Metrics().DatabasesCreated.Count())
}

// TestRacingCandidatesPublishOne holds every caller after it has built its
// candidate so that all of them race to publish, and checks that exactly one
// candidate wins.
func TestRacingCandidatesPublishOne(t *testing.T) {
	ctx := context.Background()
	const numWorkers = 8

	var barrier sync.WaitGroup
	barrier.Add(numWorkers)
	cfg := base.DefaultCatalogConfig()
	cfg.Knobs.Registry = &catalogregistry.TestingKnobs{
		BeforeDatabaseInsert: func(id catid.DescID) {
			barrier.Done()
			barrier.Wait()
		},
	}
	r := newTestRegistry(t, cfg)

	results := make([]*dbdesc.Database, numWorkers)
	var g errgroup.Group
	for i := 0; i < numWorkers; i++ {
		i := i
		g.Go(func() error {
			db, err := r.GetOrCreateDatabase(ctx, 7)
			results[i] = db
			return err
		})
	}
	require.NoError(t, g.Wait())
	for i := 1; i < numWorkers; i++ {
		require.Same(t, results[0], results[i])
	}
	published, ok := r.LookupDatabase(7)
	require.True(t, ok)
	require.Same(t, results[0], published)
	require.EqualValues(t, 1, r.Metrics().DatabasesCreated.Count())
	require.EqualValues(t, 1, r.Metrics().Databases.Value())
}

func TestDatabasesOrdered(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, base.DefaultCatalogConfig())
	for _, id := range []catid.DescID{9, 2, 5} {
		_, err := r.GetOrCreateDatabase(ctx, id)
		require.NoError(t, err)
	}
	var ids []catid.DescID
	for _, db := range r.Databases() {
		ids = append(ids, db.GetID())
	}
	require.Equal(t, []catid.DescID{2, 5, 9}, ids)
}

func TestBootstrapDatabases(t *testing.T) {
	cfg := base.DefaultCatalogConfig()
	cfg.BootstrapDatabases = []catid.DescID{1, 50}
	r := newTestRegistry(t, cfg)
	require.Equal(t, 2, r.DatabaseCount())
	_, ok := r.LookupDatabase(50)
	require.True(t, ok)

	cfg.BootstrapDatabases = []catid.DescID{3, 3}
	_, err := catalogregistry.NewRegistry(context.Background(), cfg, nil)
	require.ErrorContains(t, err, "listed twice")
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	defer log.SetOutput(&buf)()

	r := newTestRegistry(t, base.DefaultCatalogConfig())
	db, err := r.GetOrCreateDatabase(ctx, 1)
	require.NoError(t, err)
	orders := mustTable(t, 3, "orders")
	require.True(t, db.RegisterTable(ctx, orders))
	require.True(t, db.RegisterTable(ctx, mustTable(t, 4, "users")))
	_, err = r.GetOrCreateDatabase(ctx, 2)
	require.NoError(t, err)

	r.Close(logtags.AddTag(ctx, "n", 1))
	require.Equal(t, 0, r.DatabaseCount())
	require.Equal(t, 0, db.TableCount())
	require.EqualValues(t, 0, r.Metrics().Databases.Value())
	require.EqualValues(t, 0, r.Metrics().Tables.Value())
	require.Contains(t, buf.String(),
		"[n=1,catalog] closed catalog registry: released 2 databases and 2 tables")

	// The table itself is untouched by the teardown.
	require.Equal(t, "orders", orders.GetName())

	_, err = r.GetOrCreateDatabase(ctx, 1)
	require.True(t, errors.Is(err, catalogregistry.ErrRegistryClosed))
	_, ok := r.LookupDatabase(1)
	require.False(t, ok)

	// Closing twice is harmless.
	buf.Reset()
	r.Close(ctx)
	require.Empty(t, buf.String())
}

// TestRegistrationAfterClose checks that a Database handed out before Close
// rejects registrations afterwards, so the shared gauges stay at zero.
func TestRegistrationAfterClose(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, base.DefaultCatalogConfig())
	db, err := r.GetOrCreateDatabase(ctx, 1)
	require.NoError(t, err)
	users := mustTable(t, 4, "users")
	require.True(t, db.RegisterTable(ctx, users))

	r.Close(ctx)
	require.True(t, db.Dropped())

	err = db.AddTable(ctx, mustTable(t, 3, "orders"))
	require.True(t, errors.Is(err, catalog.ErrDatabaseDropped))
	require.False(t, db.RegisterTable(ctx, users))
	_, ok := db.LookupByName("users")
	require.False(t, ok)

	require.Equal(t, 0, r.DatabaseCount())
	require.EqualValues(t, 0, r.Metrics().Databases.Value())
	require.EqualValues(t, 0, r.Metrics().Tables.Value())
	require.EqualValues(t, 1, r.Metrics().TablesRegistered.Count())
}

// TestCloseConcurrentWithGetOrCreate keeps creating databases while Close
// runs. Every call either returns a Database or ErrRegistryClosed, and
// nothing survives the teardown.
func TestCloseConcurrentWithGetOrCreate(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, base.DefaultCatalogConfig())

	const numWorkers = 8
	const numIDs = 200
	// Databases only reference their tables, so one table serves them all.
	tbl := mustTable(t, 1, "t")
	started := make(chan struct{})
	var startOnce sync.Once
	var g errgroup.Group
	for w := 0; w < numWorkers; w++ {
		w := w
		g.Go(func() error {
			for i := 1; i <= numIDs; i++ {
				id := catid.DescID(w*numIDs + i)
				db, err := r.GetOrCreateDatabase(ctx, id)
				startOnce.Do(func() { close(started) })
				switch {
				case err == nil:
					if db == nil || db.GetID() != id {
						return errors.Newf("unexpected database %v for ID %d", db, id)
					}
					// A registration may lose to Close, but only with
					// ErrDatabaseDropped.
					if err := db.AddTable(ctx, tbl); err != nil &&
						!errors.Is(err, catalog.ErrDatabaseDropped) {
						return err
					}
				case errors.Is(err, catalogregistry.ErrRegistryClosed):
				default:
					return err
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		<-started
		r.Close(ctx)
		return nil
	})
	require.NoError(t, g.Wait())

	require.Equal(t, 0, r.DatabaseCount())
	require.Empty(t, r.Databases())
	require.EqualValues(t, 0, r.Metrics().Databases.Value())
	require.EqualValues(t, 0, r.Metrics().Tables.Value())
	_, err := r.GetOrCreateDatabase(ctx, 1)
	require.True(t, errors.Is(err, catalogregistry.ErrRegistryClosed))
}

func TestRegistryMetricsExported(t *testing.T) {
	ctx := context.Background()
	reg := metric.NewRegistry("oidcat")
	r, err := catalogregistry.NewRegistry(ctx, base.DefaultCatalogConfig(), reg)
	require.NoError(t, err)

	db, err := r.GetOrCreateDatabase(ctx, 1)
	require.NoError(t, err)
	require.True(t, db.RegisterTable(ctx, mustTable(t, 3, "orders")))
	db.LookupByName("orders")

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.Join(names, " ")
	require.Contains(t, joined, "oidcat_catalog_databases_created")
	require.Contains(t, joined, "oidcat_catalog_tables_registered")
	require.Equal(t, 1.0, testutil.ToFloat64(r.Metrics().LookupHits))

	// Registering the same metrics twice collides.
	_, err = catalogregistry.NewRegistry(ctx, base.DefaultCatalogConfig(), reg)
	require.Error(t, err)
}
