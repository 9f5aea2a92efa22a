// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package base

const (
	// DefaultMetricsNamespace is the prefix of every exported catalog metric
	// unless configured otherwise.
	DefaultMetricsNamespace = "oidcat"
)
