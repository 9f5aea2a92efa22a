// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package catalog contains the interfaces and value types shared by the
// catalog directory: the table handle that the storage engine hands to the
// catalog, constraint descriptors, and the catalog's errors and metrics.
package catalog

import "github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"

// NameEntry corresponds to an entry in a name index: an object with an ID
// and a name that never change once the object is registered.
type NameEntry interface {
	GetID() catid.DescID
	GetName() string
}

// Table is the catalog's view of a table owned by the storage engine.
//
// The catalog holds a Table as a non-owning reference: it never closes or
// otherwise disposes of a table, and removing a table from the catalog only
// forgets the reference. The storage engine remains responsible for the
// table's lifetime.
type Table interface {
	NameEntry
}
