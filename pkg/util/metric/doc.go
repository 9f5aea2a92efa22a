// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

/*
Package metric provides counters and gauges for the catalog, backed by the
Prometheus client library.

# Adding a new metric

Declare the metric in a metrics struct and construct it with its metadata:

	m := Metrics{
		DatabasesCreated: metric.NewCounter(metaDatabasesCreated),
	}

Then add the struct to a Registry. Every exported field that is a
prometheus.Collector is registered:

	reg := metric.NewRegistry("oidcat")
	reg.AddMetricStruct(&m)

Dotted metric names ("catalog.databases.created") are exported with
underscores, prefixed by the registry namespace
("oidcat_catalog_databases_created").

# Testing

Counter.Count and Gauge.Value read the current value back, so tests can
assert directly on the metrics struct without scraping the registry.
*/
package metric
