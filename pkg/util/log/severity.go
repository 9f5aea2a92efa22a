// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import "github.com/cockroachdb/redact"

// Severity identifies the sort of log: info, warning etc.
type Severity int32

const (
	// SeverityUnknown is the zero value and is never emitted.
	SeverityUnknown Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

// Level specifies a level of verbosity for V logs.
type Level int32

var severityChars = [...]byte{
	SeverityUnknown: 'U',
	SeverityInfo:    'I',
	SeverityWarning: 'W',
	SeverityError:   'E',
}

var severityNames = [...]string{
	SeverityUnknown: "UNKNOWN",
	SeverityInfo:    "INFO",
	SeverityWarning: "WARNING",
	SeverityError:   "ERROR",
}

// Char returns the single-character prefix for the severity.
func (s Severity) Char() byte {
	if s < 0 || int(s) >= len(severityChars) {
		return severityChars[SeverityUnknown]
	}
	return severityChars[s]
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return severityNames[SeverityUnknown]
	}
	return severityNames[s]
}

// SafeValue implements redact.SafeValue.
func (Severity) SafeValue() {}

var _ redact.SafeValue = Severity(0)
