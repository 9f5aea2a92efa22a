// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// FormatWithContextTags formats the string and prepends the context
// tags.
//
// Redaction markers are *not* inserted. The resulting
// string is generally unsafe for reporting.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var buf strings.Builder
	formatTags(ctx, &buf)
	fmt.Fprintf(&buf, format, args...)
	return buf.String()
}

// formatTags renders the context's log tags as "[k=v,k2] ". Tags without a
// value are rendered by key only.
func formatTags(ctx context.Context, buf *strings.Builder) {
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return
	}
	list := tags.Get()
	if len(list) == 0 {
		return
	}
	buf.WriteByte('[')
	for i := range list {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(list[i].Key())
		if list[i].Value() != nil {
			buf.WriteByte('=')
			buf.WriteString(list[i].ValueStr())
		}
	}
	buf.WriteString("] ")
}

// addStructured creates a log entry and writes it to the main logger.
func addStructured(ctx context.Context, sev Severity, format string, args []interface{}) {
	var buf strings.Builder
	formatTags(ctx, &buf)
	msg := redact.Sprintf(format, args...)
	if mainLog.redactable.Load() {
		buf.WriteString(string(msg))
	} else {
		buf.WriteString(msg.StripMarkers())
	}
	mainLog.outputLogEntry(sev, buf.String())
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level Level) bool {
	return level <= Level(mainLog.verbosity.Load())
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, SeverityInfo, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, SeverityWarning, format, args)
}

// VEventf logs to the INFO severity if the verbosity is at or above level.
func VEventf(ctx context.Context, level Level, format string, args ...interface{}) {
	if V(level) {
		addStructured(ctx, SeverityInfo, format, args)
	}
}

// Logf logs to the given severity.
func Logf(ctx context.Context, sev Severity, format string, args ...interface{}) {
	addStructured(ctx, sev, format, args)
}
