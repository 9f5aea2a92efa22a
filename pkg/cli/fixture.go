// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catalogregistry"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/tabledesc"
	"github.com/cockroachdb/oidcat/pkg/sql/sem/treecmp"
	"github.com/cockroachdb/oidcat/pkg/sql/types"
	"gopkg.in/yaml.v3"
)

// catalogFixture is the YAML description of a catalog loaded by the inspect
// and metrics commands.
//
//	databases:
//	- id: 1
//	  tables:
//	  - id: 3
//	    name: orders
//	    columns:
//	    - {id: 1, name: id, type: int}
//	    - {id: 2, name: qty, type: int, nullable: true}
//	    constraints:
//	    - {name: orders_pkey, type: primary key, columns: [1]}
//	    - {name: qty_default, type: default, columns: [2], value: "1"}
//	    - {name: qty_positive, type: check, columns: [2], op: ">", value: "0"}
type catalogFixture struct {
	Databases []databaseFixture `yaml:"databases"`
}

type databaseFixture struct {
	ID     catid.DescID   `yaml:"id"`
	Tables []tableFixture `yaml:"tables"`
}

type tableFixture struct {
	ID          catid.DescID        `yaml:"id"`
	Name        string              `yaml:"name"`
	Columns     []columnFixture     `yaml:"columns"`
	Constraints []constraintFixture `yaml:"constraints"`
}

type columnFixture struct {
	ID       catid.ColumnID `yaml:"id"`
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type"`
	Nullable bool           `yaml:"nullable"`
}

type constraintFixture struct {
	Name    string           `yaml:"name"`
	Type    string           `yaml:"type"`
	Columns []catid.ColumnID `yaml:"columns"`
	// Value is the DEFAULT value or the right-hand side of a CHECK
	// comparison, parsed according to the column's type.
	Value *string `yaml:"value"`
	// Op is the comparison operator of a CHECK constraint.
	Op         string            `yaml:"op"`
	References *referenceFixture `yaml:"references"`
}

type referenceFixture struct {
	Table   catid.DescID     `yaml:"table"`
	Columns []catid.ColumnID `yaml:"columns"`
}

// readFixture decodes a catalog fixture. Unknown fields are rejected.
func readFixture(r io.Reader) (catalogFixture, error) {
	var f catalogFixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return catalogFixture{}, errors.Wrap(err, "decoding catalog fixture")
	}
	return f, nil
}

func loadFixtureFile(path string) (catalogFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalogFixture{}, errors.Wrapf(err, "reading catalog fixture %q", path)
	}
	return readFixture(bytes.NewReader(data))
}

// apply loads the fixture into the registry. Databases are created on
// demand and tables are registered in fixture order; the first table or
// constraint that cannot be added stops the load.
func (f catalogFixture) apply(ctx context.Context, r *catalogregistry.Registry) error {
	for _, dbf := range f.Databases {
		db, err := r.GetOrCreateDatabase(ctx, dbf.ID)
		if err != nil {
			return errors.Wrapf(err, "database %d", dbf.ID)
		}
		for _, tf := range dbf.Tables {
			tbl, err := tf.build()
			if err != nil {
				return errors.Wrapf(err, "database %d", dbf.ID)
			}
			if err := db.AddTable(ctx, tbl); err != nil {
				return err
			}
		}
	}
	return nil
}

func (tf tableFixture) build() (*tabledesc.Table, error) {
	cols := make([]tabledesc.Column, 0, len(tf.Columns))
	for _, cf := range tf.Columns {
		family, err := types.ParseFamily(cf.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q of table %q", cf.Name, tf.Name)
		}
		cols = append(cols, tabledesc.Column{
			ID: cf.ID, Name: cf.Name, Family: family, Nullable: cf.Nullable,
		})
	}
	tbl, err := tabledesc.NewTable(tf.ID, tf.Name, cols)
	if err != nil {
		return nil, err
	}
	for _, cf := range tf.Constraints {
		if err := cf.addTo(tbl); err != nil {
			return nil, errors.Wrapf(err, "table %q", tf.Name)
		}
	}
	return tbl, nil
}

func (cf constraintFixture) addTo(tbl *tabledesc.Table) error {
	typ, err := catalog.ParseConstraintType(cf.Type)
	if err != nil {
		return err
	}
	c := catalog.NewConstraint(typ, cf.Name, cf.Columns)
	switch typ {
	case catalog.ConstraintTypeDefault, catalog.ConstraintTypeCheck:
		if err := cf.setPayload(tbl, c); err != nil {
			return err
		}
	case catalog.ConstraintTypeFK:
		if cf.References == nil {
			return errors.Newf("foreign key %q has no references section", cf.Name)
		}
		return tbl.AddForeignKey(c, cf.References.Table, cf.References.Columns)
	}
	return tbl.AddConstraint(c)
}

// setPayload parses the DEFAULT value or CHECK operand against the type of
// the constrained column. When the column cannot be resolved the payload is
// left unset and AddConstraint reports the problem.
func (cf constraintFixture) setPayload(tbl *tabledesc.Table, c *catalog.Constraint) error {
	if len(cf.Columns) != 1 {
		return nil
	}
	col, ok := tbl.ColumnByID(cf.Columns[0])
	if !ok {
		return nil
	}
	if c.Type() == catalog.ConstraintTypeCheck {
		op, ok := treecmp.LookupComparisonOperator(cf.Op)
		if !ok {
			return errors.Newf("check constraint %q has unknown operator %q", cf.Name, cf.Op)
		}
		if cf.Value == nil {
			return errors.Newf("check constraint %q has no value", cf.Name)
		}
		v, err := types.ParseValue(col.Family, *cf.Value)
		if err != nil {
			return errors.Wrapf(err, "check constraint %q", cf.Name)
		}
		c.SetCheck(op, v)
		return nil
	}
	if cf.Value == nil {
		return nil
	}
	v, err := types.ParseValue(col.Family, *cf.Value)
	if err != nil {
		return errors.Wrapf(err, "default constraint %q", cf.Name)
	}
	c.SetDefault(v)
	return nil
}
