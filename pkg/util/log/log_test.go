// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	t.Cleanup(SetOutput(&buf))
	t.Cleanup(setNowForTesting(func() time.Time {
		return time.Date(2026, 10, 17, 12, 30, 45, 123456000, time.UTC)
	}))
	return &buf
}

func TestInfofFormat(t *testing.T) {
	buf := captureLogs(t)
	ctx := logtags.AddTag(context.Background(), "db", 7)
	ctx = logtags.AddTag(ctx, "ddl", nil)

	Infof(ctx, "registered table %s", "orders")
	require.Equal(t, "I261017 12:30:45.123456 [db=7,ddl] registered table orders\n", buf.String())
}

func TestSeverityChars(t *testing.T) {
	buf := captureLogs(t)
	ctx := context.Background()
	Warningf(ctx, "w")
	Logf(ctx, SeverityError, "e")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "W"))
	require.True(t, strings.HasPrefix(lines[1], "E"))
	require.Equal(t, "WARNING", SeverityWarning.String())
	require.Equal(t, "UNKNOWN", Severity(42).String())
}

func TestVEventf(t *testing.T) {
	buf := captureLogs(t)
	ctx := context.Background()

	t.Cleanup(SetVerbosity(1))
	VEventf(ctx, 2, "hidden")
	require.Empty(t, buf.String())
	require.True(t, V(1))
	require.False(t, V(2))

	restore := SetVerbosity(2)
	VEventf(ctx, 2, "shown")
	restore()
	require.Contains(t, buf.String(), "shown")
	require.False(t, V(2))
}

func TestRedactableMarkers(t *testing.T) {
	buf := captureLogs(t)
	ctx := context.Background()

	SetRedactable(true)
	defer SetRedactable(false)
	Infof(ctx, "table %s", "secret")
	require.Contains(t, buf.String(), "‹secret›")

	buf.Reset()
	SetRedactable(false)
	Infof(ctx, "table %s", "secret")
	require.NotContains(t, buf.String(), "‹")
	require.Contains(t, buf.String(), "table secret")
}

func TestFormatWithContextTags(t *testing.T) {
	ctx := logtags.AddTag(context.Background(), "catalog", nil)
	require.Equal(t, "[catalog] hello 3", FormatWithContextTags(ctx, "hello %d", 3))
	require.Equal(t, "plain", FormatWithContextTags(context.Background(), "plain"))
}

func TestApplyConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.log")
	restore, err := ApplyConfig(Config{Verbosity: 2, File: path})
	require.NoError(t, err)
	require.True(t, V(2))
	VEventf(context.Background(), 2, "to file")
	restore()
	require.False(t, V(2))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "to file")
}

func TestEveryN(t *testing.T) {
	e := Every(time.Minute)
	start := time.Now()
	require.True(t, e.shouldLog(start))
	require.False(t, e.shouldLog(start.Add(time.Second)))
	require.True(t, e.shouldLog(start.Add(2*time.Minute)))
}

func TestStdLoggerBridge(t *testing.T) {
	buf := captureLogs(t)
	l := NewStdLogger(SeverityWarning, "graphite")
	l.Println("error pushing", 3, "metrics")
	require.Equal(t, "W261017 12:30:45.123456 graphite: error pushing 3 metrics\n", buf.String())

	buf.Reset()
	SetRedactable(true)
	defer SetRedactable(false)
	NewStdLogger(SeverityInfo, "").Printf("user %s", "alice")
	require.Equal(t, "I261017 12:30:45.123456 ‹user alice›\n", buf.String())
}
