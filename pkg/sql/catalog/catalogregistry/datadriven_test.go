// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalogregistry_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/oidcat/pkg/base"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catalogregistry"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/dbdesc"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/tabledesc"
	"github.com/stretchr/testify/require"
)

// TestDataDriven runs the scripts in testdata against a registry.
//
//	create-db id=<id>
//	register db=<id> id=<id> name=<name>
//	lookup db=<id> (id=<id> | name=<name>)
//	remove db=<id> (id=<id> | name=<name>)
//	databases
//	metrics
//	close
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		ctx := context.Background()
		r, err := catalogregistry.NewRegistry(ctx, base.DefaultCatalogConfig(), nil)
		require.NoError(t, err)

		database := func(d *datadriven.TestData) (*dbdesc.Database, string) {
			var id int
			d.ScanArgs(t, "db", &id)
			db, ok := r.LookupDatabase(catid.DescID(id))
			if !ok {
				return nil, fmt.Sprintf("database %d not found\n", id)
			}
			return db, ""
		}

		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "create-db":
				var id int
				d.ScanArgs(t, "id", &id)
				db, err := r.GetOrCreateDatabase(ctx, catid.DescID(id))
				if err != nil {
					return fmt.Sprintf("error: %v\n", err)
				}
				return db.String() + "\n"

			case "register":
				db, msg := database(d)
				if db == nil {
					return msg
				}
				var id int
				var name string
				d.ScanArgs(t, "id", &id)
				d.ScanArgs(t, "name", &name)
				tbl, err := tabledesc.NewTable(catid.DescID(id), name, nil)
				if err != nil {
					return fmt.Sprintf("error: %v\n", err)
				}
				if err := db.AddTable(ctx, tbl); err != nil {
					return fmt.Sprintf("error: %v\n", err)
				}
				return "ok\n"

			case "lookup", "remove":
				db, msg := database(d)
				if db == nil {
					return msg
				}
				var found bool
				var tbl catalog.Table
				switch {
				case d.HasArg("name"):
					var name string
					d.ScanArgs(t, "name", &name)
					if d.Cmd == "lookup" {
						tbl, found = db.LookupByName(name)
					} else {
						found = db.RemoveTableByName(ctx, name)
					}
				case d.HasArg("id"):
					var id int
					d.ScanArgs(t, "id", &id)
					if d.Cmd == "lookup" {
						tbl, found = db.LookupByID(catid.DescID(id))
					} else {
						found = db.RemoveTableByID(ctx, catid.DescID(id))
					}
				default:
					d.Fatalf(t, "%s needs an id or a name", d.Cmd)
				}
				switch {
				case !found:
					return "not found\n"
				case tbl != nil:
					return fmt.Sprintf("%s\n", tbl)
				default:
					return "removed\n"
				}

			case "databases":
				var buf strings.Builder
				for _, db := range r.Databases() {
					fmt.Fprintf(&buf, "%s\n", db)
				}
				return buf.String()

			case "metrics":
				m := r.Metrics()
				return fmt.Sprintf(
					"databases created: %d\ndatabases: %d\ntables registered: %d\n"+
						"tables removed: %d\ntables: %d\nconflicts: %d\nlookups: %d hits, %d misses\n",
					m.DatabasesCreated.Count(), m.Databases.Value(), m.TablesRegistered.Count(),
					m.TablesRemoved.Count(), m.Tables.Value(), m.RegistrationConflicts.Count(),
					m.LookupHits.Count(), m.LookupMisses.Count())

			case "close":
				r.Close(ctx)
				return "ok\n"

			default:
				d.Fatalf(t, "unknown command %q", d.Cmd)
				return ""
			}
		})
	})
}
