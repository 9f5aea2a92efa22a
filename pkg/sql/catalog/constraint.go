// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalog

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/sql/sem/treecmp"
	"github.com/cockroachdb/oidcat/pkg/sql/types"
	"github.com/cockroachdb/redact"
)

// ConstraintType is used to identify the type of a constraint.
type ConstraintType uint8

const (
	// ConstraintTypeInvalid is the zero ConstraintType.
	ConstraintTypeInvalid ConstraintType = iota
	// ConstraintTypeNotNull identifies a NOT NULL constraint.
	ConstraintTypeNotNull
	// ConstraintTypeDefault identifies a DEFAULT constraint.
	ConstraintTypeDefault
	// ConstraintTypeCheck identifies a CHECK constraint.
	ConstraintTypeCheck
	// ConstraintTypePK identifies a PRIMARY KEY constraint.
	ConstraintTypePK
	// ConstraintTypeUnique identifies a UNIQUE constraint.
	ConstraintTypeUnique
	// ConstraintTypeFK identifies a FOREIGN KEY constraint.
	ConstraintTypeFK
	// ConstraintTypeExclusion identifies an EXCLUSION constraint.
	ConstraintTypeExclusion
)

var constraintTypeNames = [...]string{
	ConstraintTypeInvalid:   "INVALID",
	ConstraintTypeNotNull:   "NOT NULL",
	ConstraintTypeDefault:   "DEFAULT",
	ConstraintTypeCheck:     "CHECK",
	ConstraintTypePK:        "PRIMARY KEY",
	ConstraintTypeUnique:    "UNIQUE",
	ConstraintTypeFK:        "FOREIGN KEY",
	ConstraintTypeExclusion: "EXCLUSION",
}

func (t ConstraintType) String() string {
	if int(t) >= len(constraintTypeNames) {
		return constraintTypeNames[ConstraintTypeInvalid]
	}
	return constraintTypeNames[t]
}

// SafeValue implements the redact.SafeValue interface.
func (ConstraintType) SafeValue() {}

// ParseConstraintType returns the constraint type spelled by s, e.g.
// "primary key" or "FOREIGN KEY".
func ParseConstraintType(s string) (ConstraintType, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for t := ConstraintTypeNotNull; int(t) < len(constraintTypeNames); t++ {
		if constraintTypeNames[t] == upper {
			return t, nil
		}
	}
	return ConstraintTypeInvalid, errors.Newf("unknown constraint type %q", s)
}

// CheckExpr is the payload of a CHECK constraint: the covered column
// compared against Value with Op.
type CheckExpr struct {
	Op    treecmp.ComparisonOperator
	Value types.Value
}

// Constraint describes one integrity rule attached to columns of a table.
// Its type, name and columns are fixed at construction. The payload
// accessors only carry meaning for the matching type: reading the default
// of a non-DEFAULT constraint, or the check of a non-CHECK constraint,
// yields the zero value.
//
// A Constraint is populated during schema definition and is not safe for
// concurrent mutation.
type Constraint struct {
	typ       ConstraintType
	name      string
	columnIDs []catid.ColumnID

	// Offsets into the foreign key and unique index lists of the owning
	// table.
	fkListOffset      catid.Offset
	uniqueIndexOffset catid.Offset

	defaultValue types.Value
	check        CheckExpr
}

// NewConstraint creates a constraint of the given type covering columnIDs.
// The constraint keeps its own copy of columnIDs. Both list offsets start
// out as catid.InvalidOffset.
func NewConstraint(typ ConstraintType, name string, columnIDs []catid.ColumnID) *Constraint {
	return &Constraint{
		typ:               typ,
		name:              name,
		columnIDs:         slices.Clone(columnIDs),
		fkListOffset:      catid.InvalidOffset,
		uniqueIndexOffset: catid.InvalidOffset,
	}
}

// Type returns the constraint's type.
func (c *Constraint) Type() ConstraintType { return c.typ }

// Name returns the constraint's name.
func (c *Constraint) Name() string { return c.name }

// ColumnIDs returns the columns covered by the constraint, in declaration
// order. The slice is shared with the constraint and must not be modified.
func (c *Constraint) ColumnIDs() []catid.ColumnID { return c.columnIDs }

// SetForeignKeyListOffset records the position of this constraint's entry in
// the table's list of foreign key references.
func (c *Constraint) SetForeignKeyListOffset(offset catid.Offset) { c.fkListOffset = offset }

// SetUniqueIndexOffset records the position of this constraint's entry in
// the table's list of unique indexes.
func (c *Constraint) SetUniqueIndexOffset(offset catid.Offset) { c.uniqueIndexOffset = offset }

// ForeignKeyListOffset returns the offset set by SetForeignKeyListOffset.
func (c *Constraint) ForeignKeyListOffset() catid.Offset { return c.fkListOffset }

// UniqueIndexOffset returns the offset set by SetUniqueIndexOffset.
func (c *Constraint) UniqueIndexOffset() catid.Offset { return c.uniqueIndexOffset }

// SetDefault sets the default value. It has no effect unless the constraint
// is a DEFAULT constraint.
func (c *Constraint) SetDefault(v types.Value) {
	if c.typ == ConstraintTypeDefault {
		c.defaultValue = v
	}
}

// SetCheck sets the check expression. It has no effect unless the
// constraint is a CHECK constraint.
func (c *Constraint) SetCheck(op treecmp.ComparisonOperator, v types.Value) {
	if c.typ == ConstraintTypeCheck {
		c.check = CheckExpr{Op: op, Value: v}
	}
}

// Default returns the default value of a DEFAULT constraint.
func (c *Constraint) Default() types.Value { return c.defaultValue }

// Check returns the check expression of a CHECK constraint.
func (c *Constraint) Check() CheckExpr { return c.check }

// SafeFormat implements the redact.SafeFormatter interface.
func (c *Constraint) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("Constraint[%s, %s, columns (", c.name, c.typ)
	for i, col := range c.columnIDs {
		if i > 0 {
			w.SafeRune(',')
		}
		w.Print(col)
	}
	w.SafeRune(')')
	switch c.typ {
	case ConstraintTypeDefault:
		w.Printf(", default %v", c.defaultValue)
	case ConstraintTypeCheck:
		w.Printf(", check %s %v", c.check.Op, c.check.Value)
	}
	if c.fkListOffset.IsValid() {
		w.Printf(", fk offset %d", c.fkListOffset)
	}
	if c.uniqueIndexOffset.IsValid() {
		w.Printf(", unique index offset %d", c.uniqueIndexOffset)
	}
	w.SafeRune(']')
}

// Info returns a human-readable description of the constraint for
// debugging.
func (c *Constraint) Info() string { return c.String() }

func (c *Constraint) String() string { return redact.StringWithoutMarkers(c) }

var _ redact.SafeFormatter = (*Constraint)(nil)
