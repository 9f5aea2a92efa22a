// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/cli/clierror"
	"github.com/cockroachdb/oidcat/pkg/cli/exit"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/dbdesc"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/tabledesc"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect --fixture <file>",
	Short: "load a catalog fixture and list its databases and tables",
	Long: `
Load the catalog fixture into a fresh registry and print, for every
database, the tables registered in it ordered by ID. With --constraints,
the constraints of every table are listed as well.
`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, _ []string) error {
	if inspectCtx.fixturePath == "" {
		return clierror.NewError(
			errors.WithHint(errors.New("no catalog fixture given"), "use --fixture"),
			exit.CommandLineFlagError())
	}
	if id := int64(inspectCtx.databaseID); id < 0 || id > math.MaxUint32 {
		return clierror.NewError(
			errors.Newf("database ID %d out of range [0, %d]", id, uint32(math.MaxUint32)),
			exit.CommandLineFlagError())
	}
	ctx := cmd.Context()
	env, err := openCatalog(ctx, inspectCtx.fixturePath)
	if err != nil {
		return err
	}
	defer env.close(ctx)

	dbs := env.registry.Databases()
	if inspectCtx.databaseID != 0 {
		db, ok := env.registry.LookupDatabase(catid.DescID(inspectCtx.databaseID))
		if !ok {
			return errors.Newf("database %d not found", inspectCtx.databaseID)
		}
		dbs = []*dbdesc.Database{db}
	}
	w := cmd.OutOrStdout()
	for i, db := range dbs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := printDatabase(w, db, inspectCtx.showConstraints); err != nil {
			return err
		}
	}
	return nil
}

func printDatabase(w io.Writer, db *dbdesc.Database, showConstraints bool) error {
	tables := db.Tables()
	fmt.Fprintf(w, "database %d: %d table%s\n", db.GetID(), len(tables), pluralize(len(tables)))
	rows := make([][]string, 0, len(tables))
	var constraintRows [][]string
	for _, t := range tables {
		row := []string{strconv.FormatUint(uint64(t.GetID()), 10), t.GetName(), "", ""}
		if td, ok := t.(*tabledesc.Table); ok {
			row[2] = formatColumns(td.Columns())
			row[3] = strconv.Itoa(len(td.Constraints()))
			for _, c := range td.Constraints() {
				constraintRows = append(constraintRows, []string{
					t.GetName(), c.Name(), c.Type().String(), formatColumnIDs(c.ColumnIDs()), constraintDetail(td, c),
				})
			}
		}
		rows = append(rows, row)
	}
	if err := printTable(w, []string{"id", "name", "columns", "constraints"}, rows,
		cliCtx.tableDisplayFormat); err != nil {
		return err
	}
	if showConstraints {
		return printTable(w, []string{"table", "constraint", "type", "columns", "detail"},
			constraintRows, cliCtx.tableDisplayFormat)
	}
	return nil
}

func formatColumns(cols []tabledesc.Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%s %s", c.Name, strings.ToUpper(c.Family.String()))
		if c.Nullable {
			parts[i] += " NULL"
		}
	}
	return strings.Join(parts, ", ")
}

func formatColumnIDs(ids []catid.ColumnID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func constraintDetail(t *tabledesc.Table, c *catalog.Constraint) string {
	switch c.Type() {
	case catalog.ConstraintTypeDefault:
		return "default " + c.Default().String()
	case catalog.ConstraintTypeCheck:
		return fmt.Sprintf("%s %s", c.Check().Op, c.Check().Value)
	case catalog.ConstraintTypeFK:
		if off := c.ForeignKeyListOffset(); off.IsValid() && int(off) < len(t.ForeignKeys()) {
			fk := t.ForeignKeys()[off]
			return fmt.Sprintf("references %d %s", fk.ReferencedTableID, formatColumnIDs(fk.ReferencedColumnIDs))
		}
	case catalog.ConstraintTypePK, catalog.ConstraintTypeUnique:
		if off := c.UniqueIndexOffset(); off.IsValid() {
			return fmt.Sprintf("unique index %d", off)
		}
	}
	return ""
}
