// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package catid is a low-level package exporting the identifier types used
// by the catalog.
package catid

import "github.com/cockroachdb/redact"

// DescID is the identifier of a database or a table. Database IDs are unique
// process-wide; table IDs are unique within their database.
type DescID uint32

// InvalidDescID is the sentinel meaning "no such object".
const InvalidDescID DescID = 0

// SafeValue implements the redact.SafeValue interface.
func (DescID) SafeValue() {}

// ColumnID is a column identifier, unique within its table.
type ColumnID uint32

// InvalidColumnID is the sentinel meaning "no such column".
const InvalidColumnID ColumnID = 0

// SafeValue implements the redact.SafeValue interface.
func (ColumnID) SafeValue() {}

// Offset is a position in one of a table's auxiliary lists (foreign key
// references, unique indexes).
type Offset uint32

// InvalidOffset is the offset of a constraint that has no entry in the
// corresponding list.
const InvalidOffset Offset = 0xFFFFFFFF

// IsValid returns whether the offset points at a list entry.
func (o Offset) IsValid() bool { return o != InvalidOffset }

// SafeValue implements the redact.SafeValue interface.
func (Offset) SafeValue() {}

var (
	_ redact.SafeValue = DescID(0)
	_ redact.SafeValue = ColumnID(0)
	_ redact.SafeValue = Offset(0)
)
