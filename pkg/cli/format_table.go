// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
)

type tableDisplayFormat int

const (
	tableDisplayTSV tableDisplayFormat = iota
	tableDisplayCSV
	tableDisplayTable
	tableDisplayLastFormat
)

var tableDisplayNames = [...]string{
	tableDisplayTSV:   "tsv",
	tableDisplayCSV:   "csv",
	tableDisplayTable: "table",
}

// Type implements the pflag.Value interface.
func (f *tableDisplayFormat) Type() string {
	return "string"
}

// String implements the pflag.Value interface.
func (f *tableDisplayFormat) String() string {
	if *f < 0 || *f >= tableDisplayLastFormat {
		return ""
	}
	return tableDisplayNames[*f]
}

// Set implements the pflag.Value interface.
func (f *tableDisplayFormat) Set(s string) error {
	for i := tableDisplayTSV; i < tableDisplayLastFormat; i++ {
		if s == tableDisplayNames[i] {
			*f = i
			return nil
		}
	}
	return errors.Newf("invalid table display format: %s (possible values: %s)",
		s, strings.Join(tableDisplayNames[:], ", "))
}

// pluralize returns "s" if n is not 1.
func pluralize(n int) string {
	if n != 1 {
		return "s"
	}
	return ""
}

// expandTabsAndNewLines ensures that multi-line or tab-containing cells do
// not break the table layout.
func expandTabsAndNewLines(s string) string {
	return strings.NewReplacer("\t", "  ", "\n", "↵").Replace(s)
}

// printTable writes the rows to w in the given format. The table format is
// followed by a row count and omits the header when there are no rows; the
// tsv and csv formats start with the row count.
func printTable(w io.Writer, cols []string, rows [][]string, displayFormat tableDisplayFormat) error {
	switch displayFormat {
	case tableDisplayTable:
		if len(rows) > 0 {
			table := tablewriter.NewWriter(w)
			table.SetAutoFormatHeaders(false)
			table.SetAutoWrapText(false)
			table.SetHeader(cols)
			for _, row := range rows {
				for i, r := range row {
					row[i] = expandTabsAndNewLines(r)
				}
				table.Append(row)
			}
			table.Render()
		}
		fmt.Fprintf(w, "(%d row%s)\n", len(rows), pluralize(len(rows)))

	case tableDisplayTSV, tableDisplayCSV:
		fmt.Fprintf(w, "%d row%s\n", len(rows), pluralize(len(rows)))
		csvWriter := csv.NewWriter(w)
		if displayFormat == tableDisplayTSV {
			csvWriter.Comma = '\t'
		}
		if err := csvWriter.Write(cols); err != nil {
			return err
		}
		return csvWriter.WriteAll(rows)

	default:
		return errors.AssertionFailedf("unknown display format %d", displayFormat)
	}
	return nil
}
