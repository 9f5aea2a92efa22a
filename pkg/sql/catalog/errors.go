// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalog

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
)

// ErrTableNameExists is returned, possibly wrapped, when registering a
// table whose name is already in use in the database.
var ErrTableNameExists = errors.New("table name already exists")

// ErrTableIDExists is returned, possibly wrapped, when registering a table
// whose ID is already registered under a different name.
var ErrTableIDExists = errors.New("table ID already exists")

// ErrDatabaseDropped is returned, possibly wrapped, when registering a table
// in a database that has been dropped.
var ErrDatabaseDropped = errors.New("database has been dropped")

// NewDatabaseDroppedError returns an error marked as ErrDatabaseDropped.
func NewDatabaseDroppedError(dbID catid.DescID, name string) error {
	return errors.Mark(
		errors.Newf("cannot register relation %q in database %d: database has been dropped",
			name, dbID),
		ErrDatabaseDropped,
	)
}

// NewTableNameExistsError returns an error marked as ErrTableNameExists.
func NewTableNameExistsError(dbID catid.DescID, name string, existing catid.DescID) error {
	return errors.Mark(
		errors.Newf("relation %q already exists in database %d with ID %d", name, dbID, existing),
		ErrTableNameExists,
	)
}

// NewTableIDExistsError returns an error marked as ErrTableIDExists.
func NewTableIDExistsError(
	dbID catid.DescID, id catid.DescID, name string, existingName string,
) error {
	return errors.Mark(
		errors.Newf("cannot register relation %q with ID %d in database %d: ID in use by %q",
			name, id, dbID, existingName),
		ErrTableIDExists,
	)
}
