// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	stdLog "log"
	"strings"
)

// NewStdLogger creates a *stdLog.Logger that forwards messages to the
// process logs with the specified severity. It is meant for libraries that
// accept a standard logger or anything with a Println method.
//
// A non-empty prefix is prepended to every message, followed by ": ".
func NewStdLogger(severity Severity, prefix string) *stdLog.Logger {
	if prefix != "" && !strings.HasSuffix(prefix, ": ") {
		prefix += ": "
	}
	return stdLog.New(logBridge(severity), prefix, 0)
}

// logBridge provides the Write method that connects a standard logger to
// the logs provided by this package.
type logBridge Severity

// Write passes one line of the standard logger to the logger for
// Severity(lb). Since the caller is using the stdLog interface, we don't know
// what is being logged, so the whole line is treated as unsafe for
// redaction.
func (lb logBridge) Write(b []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(b), "\n")
	addStructured(context.Background(), Severity(lb), "%s", []interface{}{msg})
	return len(b), nil
}
