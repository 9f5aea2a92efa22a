// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	cols := []string{"id", "name"}
	rows := func() [][]string {
		return [][]string{{"3", "orders"}, {"5", "multi\nline"}}
	}

	var buf strings.Builder
	require.NoError(t, printTable(&buf, cols, rows(), tableDisplayTSV))
	require.Equal(t, "2 rows\nid\tname\n3\torders\n5\t\"multi\nline\"\n", buf.String())

	buf.Reset()
	require.NoError(t, printTable(&buf, cols, rows()[:1], tableDisplayCSV))
	require.Equal(t, "1 row\nid,name\n3,orders\n", buf.String())

	buf.Reset()
	require.NoError(t, printTable(&buf, cols, rows(), tableDisplayTable))
	out := buf.String()
	require.Contains(t, out, "orders")
	require.Contains(t, out, "multi↵line")
	require.True(t, strings.HasSuffix(out, "(2 rows)\n"))

	buf.Reset()
	require.NoError(t, printTable(&buf, cols, nil, tableDisplayTable))
	require.Equal(t, "(0 rows)\n", buf.String())
}

func TestTableDisplayFormat(t *testing.T) {
	var f tableDisplayFormat
	require.NoError(t, f.Set("csv"))
	require.Equal(t, tableDisplayCSV, f)
	require.Equal(t, "csv", f.String())
	require.ErrorContains(t, f.Set("html"), "possible values: tsv, csv, table")
}
