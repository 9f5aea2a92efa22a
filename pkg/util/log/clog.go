// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/oidcat/pkg/util/syncutil"
)

// loggerT is the process-wide log sink. Entries are written to the output
// under mu so that concurrent callers never interleave partial lines.
type loggerT struct {
	verbosity  atomic.Int32
	redactable atomic.Bool

	mu struct {
		syncutil.Mutex
		w   io.Writer
		now func() time.Time
	}
}

var mainLog = func() *loggerT {
	l := &loggerT{}
	l.mu.w = os.Stderr
	l.mu.now = time.Now
	return l
}()

// SetOutput redirects log output to w and returns a function that restores
// the previous writer. Intended for tests and for embedding programs.
func SetOutput(w io.Writer) (restore func()) {
	mainLog.mu.Lock()
	defer mainLog.mu.Unlock()
	prev := mainLog.mu.w
	mainLog.mu.w = w
	return func() {
		mainLog.mu.Lock()
		defer mainLog.mu.Unlock()
		mainLog.mu.w = prev
	}
}

// SetVerbosity sets the global verbosity level for V and VEventf and returns
// a function that restores the previous level.
func SetVerbosity(level Level) (restore func()) {
	prev := mainLog.verbosity.Swap(int32(level))
	return func() { mainLog.verbosity.Store(prev) }
}

// SetRedactable controls whether emitted entries keep redaction markers
// around unsafe values.
func SetRedactable(redactable bool) {
	mainLog.redactable.Store(redactable)
}

// setNowForTesting overrides the clock used to stamp entries.
func setNowForTesting(now func() time.Time) (restore func()) {
	mainLog.mu.Lock()
	defer mainLog.mu.Unlock()
	prev := mainLog.mu.now
	mainLog.mu.now = now
	return func() {
		mainLog.mu.Lock()
		defer mainLog.mu.Unlock()
		mainLog.mu.now = prev
	}
}

func (l *loggerT) outputLogEntry(sev Severity, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeEntryLocked(sev, msg)
}

func (l *loggerT) writeEntryLocked(sev Severity, msg string) {
	l.mu.AssertHeld()
	buf := make([]byte, 0, len(msg)+32)
	buf = append(buf, sev.Char())
	buf = l.mu.now().UTC().AppendFormat(buf, "060102 15:04:05.000000")
	buf = append(buf, ' ')
	buf = append(buf, msg...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		buf = append(buf, '\n')
	}
	// Write errors are dropped; there is nowhere else to report them.
	_, _ = l.mu.w.Write(buf)
}
