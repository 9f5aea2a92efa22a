// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalog

import "github.com/cockroachdb/oidcat/pkg/util/metric"

var (
	metaDatabasesCreated = metric.Metadata{
		Name: "catalog.databases.created",
		Help: "Number of databases created in the catalog registry",
	}
	metaDatabases = metric.Metadata{
		Name: "catalog.databases",
		Help: "Number of databases currently in the catalog registry",
	}
	metaTablesRegistered = metric.Metadata{
		Name: "catalog.tables.registered",
		Help: "Number of successful table registrations",
	}
	metaTablesRemoved = metric.Metadata{
		Name: "catalog.tables.removed",
		Help: "Number of tables removed or dropped from a database",
	}
	metaTables = metric.Metadata{
		Name: "catalog.tables",
		Help: "Number of tables currently registered across all databases",
	}
	metaRegistrationConflicts = metric.Metadata{
		Name: "catalog.tables.registration_conflicts",
		Help: "Number of table registrations rejected because the name or ID was in use",
	}
	metaLookupHits = metric.Metadata{
		Name: "catalog.lookups.hits",
		Help: "Number of table lookups that found a table",
	}
	metaLookupMisses = metric.Metadata{
		Name: "catalog.lookups.misses",
		Help: "Number of table lookups that found nothing",
	}
)

// Metrics groups the catalog's counters. A single Metrics is shared by a
// registry and every database it creates.
type Metrics struct {
	DatabasesCreated      *metric.Counter
	Databases             *metric.Gauge
	TablesRegistered      *metric.Counter
	TablesRemoved         *metric.Counter
	Tables                *metric.Gauge
	RegistrationConflicts *metric.Counter
	LookupHits            *metric.Counter
	LookupMisses          *metric.Counter
}

// MakeMetrics instantiates the catalog's metrics.
func MakeMetrics() *Metrics {
	return &Metrics{
		DatabasesCreated:      metric.NewCounter(metaDatabasesCreated),
		Databases:             metric.NewGauge(metaDatabases),
		TablesRegistered:      metric.NewCounter(metaTablesRegistered),
		TablesRemoved:         metric.NewCounter(metaTablesRemoved),
		Tables:                metric.NewGauge(metaTables),
		RegistrationConflicts: metric.NewCounter(metaRegistrationConflicts),
		LookupHits:            metric.NewCounter(metaLookupHits),
		LookupMisses:          metric.NewCounter(metaLookupMisses),
	}
}

// RecordLookup bumps the hit or miss counter.
func (m *Metrics) RecordLookup(found bool) {
	if found {
		m.LookupHits.Inc(1)
	} else {
		m.LookupMisses.Inc(1)
	}
}
