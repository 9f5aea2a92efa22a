// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package tabledesc provides Table, the storage engine's in-memory
// description of a table: its columns, its constraints, and the foreign key
// and unique index lists that constraints point into.
package tabledesc

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/sql/types"
	"github.com/cockroachdb/oidcat/pkg/util/syncutil"
	"github.com/cockroachdb/redact"
)

// Column describes one column of a table.
type Column struct {
	ID       catid.ColumnID
	Name     string
	Family   types.Family
	Nullable bool
}

// ForeignKeyReference is an entry of a table's foreign key list.
type ForeignKeyReference struct {
	ConstraintName      string
	OriginColumnIDs     []catid.ColumnID
	ReferencedTableID   catid.DescID
	ReferencedColumnIDs []catid.ColumnID
}

// UniqueIndex is an entry of a table's unique index list. It backs a
// PRIMARY KEY or UNIQUE constraint.
type UniqueIndex struct {
	ConstraintName string
	ColumnIDs      []catid.ColumnID
	Primary        bool
}

// Table is a table's schema. It implements catalog.Table.
//
// A Table is built up during schema definition and must not be mutated once
// it is shared; none of its methods synchronize.
type Table struct {
	id      catid.DescID
	name    string
	columns []Column
	colIDs  catalog.TableColSet

	constraints   []*catalog.Constraint
	foreignKeys   []ForeignKeyReference
	uniqueIndexes []UniqueIndex
}

var _ catalog.Table = (*Table)(nil)

// NewTable creates a table with the given columns. Column IDs and names must
// be unique and column IDs must be valid. The table keeps its own copy of
// columns.
func NewTable(id catid.DescID, name string, columns []Column) (*Table, error) {
	if id == catid.InvalidDescID {
		return nil, errors.Newf("table %q must have a valid ID", name)
	}
	t := &Table{id: id, name: name, columns: slices.Clone(columns)}
	var names syncutil.Set[string]
	for _, c := range t.columns {
		if c.ID == catid.InvalidColumnID {
			return nil, errors.Newf("column %q of table %q must have a valid ID", c.Name, name)
		}
		if t.colIDs.Contains(c.ID) {
			return nil, errors.Newf("duplicate column ID %d in table %q", c.ID, name)
		}
		if !names.Add(c.Name) {
			return nil, errors.Newf("duplicate column name %q in table %q", c.Name, name)
		}
		t.colIDs.Add(c.ID)
	}
	return t, nil
}

// GetID implements catalog.NameEntry.
func (t *Table) GetID() catid.DescID { return t.id }

// GetName implements catalog.NameEntry.
func (t *Table) GetName() string { return t.name }

// Columns returns the table's columns in declaration order.
func (t *Table) Columns() []Column { return t.columns }

// ColumnByID returns the column with the given ID.
func (t *Table) ColumnByID(id catid.ColumnID) (Column, bool) {
	for _, c := range t.columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// Constraints returns the table's constraints in the order they were added.
func (t *Table) Constraints() []*catalog.Constraint { return t.constraints }

// ForeignKeys returns the table's foreign key list.
func (t *Table) ForeignKeys() []ForeignKeyReference { return t.foreignKeys }

// UniqueIndexes returns the table's unique index list.
func (t *Table) UniqueIndexes() []UniqueIndex { return t.uniqueIndexes }

// FindConstraint returns the constraint with the given name.
func (t *Table) FindConstraint(name string) (*catalog.Constraint, bool) {
	for _, c := range t.constraints {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// PrimaryKey returns the PRIMARY KEY constraint, if any.
func (t *Table) PrimaryKey() (*catalog.Constraint, bool) {
	for _, c := range t.constraints {
		if c.Type() == catalog.ConstraintTypePK {
			return c, true
		}
	}
	return nil, false
}

// AddConstraint attaches c to the table. PRIMARY KEY and UNIQUE constraints
// get an entry in the unique index list and c records its offset. FOREIGN KEY
// constraints must be added with AddForeignKey.
func (t *Table) AddConstraint(c *catalog.Constraint) error {
	if err := t.validateConstraint(c); err != nil {
		return err
	}
	switch c.Type() {
	case catalog.ConstraintTypeFK:
		return errors.WithHint(
			errors.Newf("foreign key constraint %q needs a referenced table", c.Name()),
			"use AddForeignKey",
		)
	case catalog.ConstraintTypePK, catalog.ConstraintTypeUnique:
		primary := c.Type() == catalog.ConstraintTypePK
		if _, ok := t.PrimaryKey(); ok && primary {
			return errors.Newf("multiple primary keys for table %q are not allowed", t.name)
		}
		c.SetUniqueIndexOffset(catid.Offset(len(t.uniqueIndexes)))
		t.uniqueIndexes = append(t.uniqueIndexes, UniqueIndex{
			ConstraintName: c.Name(),
			ColumnIDs:      slices.Clone(c.ColumnIDs()),
			Primary:        primary,
		})
	case catalog.ConstraintTypeDefault, catalog.ConstraintTypeCheck:
		if len(c.ColumnIDs()) != 1 {
			return errors.Newf("%s constraint %q must cover exactly one column", c.Type(), c.Name())
		}
		if err := t.validatePayload(c); err != nil {
			return err
		}
	}
	t.constraints = append(t.constraints, c)
	return nil
}

// AddForeignKey attaches the FOREIGN KEY constraint c, referencing columns
// referencedColumnIDs of table referencedTableID. The reference is appended
// to the foreign key list and c records its offset.
func (t *Table) AddForeignKey(
	c *catalog.Constraint, referencedTableID catid.DescID, referencedColumnIDs []catid.ColumnID,
) error {
	if err := t.validateConstraint(c); err != nil {
		return err
	}
	if c.Type() != catalog.ConstraintTypeFK {
		return errors.Newf("constraint %q is a %s constraint, not a foreign key", c.Name(), c.Type())
	}
	if referencedTableID == catid.InvalidDescID {
		return errors.Newf("foreign key %q must reference a valid table", c.Name())
	}
	if len(referencedColumnIDs) != len(c.ColumnIDs()) {
		return errors.Newf("foreign key %q has %d columns but references %d",
			c.Name(), len(c.ColumnIDs()), len(referencedColumnIDs))
	}
	c.SetForeignKeyListOffset(catid.Offset(len(t.foreignKeys)))
	t.foreignKeys = append(t.foreignKeys, ForeignKeyReference{
		ConstraintName:      c.Name(),
		OriginColumnIDs:     slices.Clone(c.ColumnIDs()),
		ReferencedTableID:   referencedTableID,
		ReferencedColumnIDs: slices.Clone(referencedColumnIDs),
	})
	t.constraints = append(t.constraints, c)
	return nil
}

func (t *Table) validateConstraint(c *catalog.Constraint) error {
	if c == nil {
		return errors.AssertionFailedf("nil constraint for table %q", t.name)
	}
	if c.Type() == catalog.ConstraintTypeInvalid {
		return errors.Newf("constraint %q has an invalid type", c.Name())
	}
	if _, ok := t.FindConstraint(c.Name()); ok {
		return errors.Newf("duplicate constraint name %q for table %q", c.Name(), t.name)
	}
	if len(c.ColumnIDs()) == 0 {
		return errors.Newf("constraint %q does not cover any column", c.Name())
	}
	var seen syncutil.Set[catid.ColumnID]
	for _, id := range c.ColumnIDs() {
		if !t.colIDs.Contains(id) {
			return errors.Wrapf(ErrUnknownColumn, "constraint %q references column %d of table %q",
				c.Name(), id, t.name)
		}
		if seen.Contains(id) {
			return errors.Newf("constraint %q lists column %d twice", c.Name(), id)
		}
		seen.Add(id)
	}
	return nil
}

// validatePayload checks that a DEFAULT or CHECK payload has the family of
// its column. Unset payloads are accepted.
func (t *Table) validatePayload(c *catalog.Constraint) error {
	col, _ := t.ColumnByID(c.ColumnIDs()[0])
	var v types.Value
	if c.Type() == catalog.ConstraintTypeDefault {
		v = c.Default()
	} else {
		v = c.Check().Value
	}
	if !v.IsSet() || col.Family == types.UnknownFamily || v.Family() == col.Family {
		return nil
	}
	return errors.Newf("%s constraint %q has a %s value but column %q is %s",
		c.Type(), c.Name(), v.Family(), col.Name, col.Family)
}

// ErrUnknownColumn is returned, wrapped, when a constraint references a
// column that the table does not have.
var ErrUnknownColumn = errors.New("unknown column")

// SafeFormat implements the redact.SafeFormatter interface.
func (t *Table) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("Table[%d, %s, %d columns, %d constraints]", t.id, t.name,
		redact.SafeInt(len(t.columns)), redact.SafeInt(len(t.constraints)))
}

func (t *Table) String() string { return redact.StringWithoutMarkers(t) }
