// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cliflags describes the command-line flags of the oidcat binary.
package cliflags

import (
	"fmt"
	"strings"
)

// FlagInfo contains the static information for a CLI flag.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// value can be controlled (optional).
	EnvVar string

	// Description of the flag.
	Description string
}

// Usage returns a usage string for the flag.
func (f FlagInfo) Usage() string {
	s := strings.TrimSpace(f.Description)
	if f.EnvVar != "" {
		s = fmt.Sprintf("%s\nEnvironment variable: %s", s, f.EnvVar)
	}
	return s
}

// Flags shared by all commands.
var (
	Config = FlagInfo{
		Name:        "config",
		Shorthand:   "c",
		EnvVar:      "OIDCAT_CONFIG",
		Description: `Path to a YAML catalog configuration file.`,
	}

	Verbosity = FlagInfo{
		Name:        "v",
		EnvVar:      "OIDCAT_VERBOSITY",
		Description: `Log verbosity level. Overrides the verbosity in the configuration file.`,
	}

	TableDisplayFormat = FlagInfo{
		Name:   "format",
		EnvVar: "OIDCAT_FORMAT",
		Description: `
Selects how to display result tables. Possible values: tsv, csv, table.
The default is table when stdout is a terminal, tsv otherwise.`,
	}

	Redactable = FlagInfo{
		Name: "redactable-logs",
		Description: `
Keep redaction markers around sensitive values such as table names in
log entries.`,
	}
)

// Flags for the inspect and metrics commands.
var (
	Fixture = FlagInfo{
		Name:      "fixture",
		Shorthand: "f",
		EnvVar:    "OIDCAT_FIXTURE",
		Description: `
Path to a YAML catalog fixture describing databases, tables, columns and
constraints to load into the registry.`,
	}

	Database = FlagInfo{
		Name:        "database",
		Shorthand:   "d",
		Description: `Only show the database with this ID.`,
	}

	ShowConstraints = FlagInfo{
		Name:        "constraints",
		Description: `Also list the constraints of every table.`,
	}

	GraphiteEndpoint = FlagInfo{
		Name:        "graphite-endpoint",
		EnvVar:      "OIDCAT_GRAPHITE_ENDPOINT",
		Description: `If set, push the gathered metrics to this Graphite/Carbon host:port.`,
	}
)
