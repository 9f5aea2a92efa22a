// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package clierror carries exit codes and severities alongside errors
// returned by CLI commands, and renders errors for the terminal.
package clierror

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/cli/exit"
	"github.com/cockroachdb/oidcat/pkg/util/log"
)

// Error wraps exit code and severity information around an error. It
// is recognized by CheckAndMaybeLog and by the top-level command runner.
type Error struct {
	exitCode exit.Code
	severity log.Severity
	cause    error
}

// NewError wraps the cause with the given exit code. The error is
// logged at severity ERROR.
func NewError(cause error, exitCode exit.Code) error {
	return NewErrorWithSeverity(cause, exitCode, log.SeverityError)
}

// NewErrorWithSeverity is like NewError but the error is logged at the
// given severity.
func NewErrorWithSeverity(cause error, exitCode exit.Code, severity log.Severity) error {
	return &Error{exitCode: exitCode, severity: severity, cause: cause}
}

// GetExitCode returns the exit code carried by the error.
func (e *Error) GetExitCode() exit.Code { return e.exitCode }

// GetSeverity returns the severity at which the error is logged.
func (e *Error) GetSeverity() log.Severity { return e.severity }

// Error implements the error interface.
func (e *Error) Error() string { return e.cause.Error() }

// Cause implements causer.
func (e *Error) Cause() error { return e.cause }

// Unwrap implements the Go 1.13 unwrap protocol.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// FormatError implements errors.Formatter.
func (e *Error) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("error with exit code: %s", e.exitCode)
	}
	return e.cause
}

// LogFunc is the signature of the function CheckAndMaybeLog reports
// through.
type LogFunc func(ctx context.Context, sev log.Severity, format string, args ...interface{})

// CheckAndMaybeLog reports the error, if non-nil, to the given logger
// and returns it unchanged. An *Error anywhere in the chain determines
// the severity and only its immediate cause is logged.
func CheckAndMaybeLog(err error, logger LogFunc) error {
	if err == nil {
		return nil
	}
	severity := log.SeverityError
	cause := err
	var ec *Error
	if errors.As(err, &ec) {
		severity = ec.severity
		cause = ec.cause
	}
	logger(context.Background(), severity, "%v", cause)
	return err
}

// GetExitCode returns the exit code for the error: the one carried by
// an *Error in the chain, or exit.UnspecifiedError otherwise.
func GetExitCode(err error) exit.Code {
	if err == nil {
		return exit.Success()
	}
	var ec *Error
	if errors.As(err, &ec) {
		return ec.exitCode
	}
	return exit.UnspecifiedError()
}

// OutputError prints the error to w, followed by its details and hints.
// With showSeverity, the first line is prefixed by "ERROR: ".
func OutputError(w io.Writer, err error, showSeverity bool) {
	var buf strings.Builder
	if showSeverity {
		severity := log.SeverityError
		var ec *Error
		if errors.As(err, &ec) {
			severity = ec.severity
		}
		buf.WriteString(severity.String())
		buf.WriteString(": ")
	}
	buf.WriteString(err.Error())
	buf.WriteByte('\n')
	if d := errors.FlattenDetails(err); d != "" {
		fmt.Fprintf(&buf, "DETAIL: %s\n", d)
	}
	if h := errors.FlattenHints(err); h != "" {
		fmt.Fprintf(&buf, "HINT: %s\n", h)
	}
	fmt.Fprint(w, buf.String())
}
