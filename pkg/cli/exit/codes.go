// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package exit

// Codes that are common to all commands follow.

// Success (0) represents a normal process termination.
func Success() Code { return Code{0} }

// UnspecifiedError (1) indicates the process has terminated with an
// error condition. The specific cause of the error can be found in
// the logging output.
func UnspecifiedError() Code { return Code{1} }

// UnspecifiedGoPanic (2) indicates the process has terminated due to
// an uncaught Go panic or some other error in the Go runtime.
func UnspecifiedGoPanic() Code { return Code{2} }

// CommandLineFlagError (4) indicates there was an error in the
// command-line parameters.
func CommandLineFlagError() Code { return Code{4} }

// LoggingFileUnavailable (6) indicates that an error occurred
// during a logging operation to a file.
func LoggingFileUnavailable() Code { return Code{6} }

// Codes that are specific to client commands follow. Command-specific
// exit codes should be allocated down from 125.

// 'inspect' exit codes.

// FixtureValidationFailed indicates that the 'inspect' command has
// rejected the catalog fixture: a table or constraint could not be
// registered.
func FixtureValidationFailed() Code { return Code{125} }

// 'metrics' exit codes.

// MetricsPushFailed indicates that metrics could not be pushed to the
// configured Graphite endpoint.
func MetricsPushFailed() Code { return Code{124} }
