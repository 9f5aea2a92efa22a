// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cli implements the oidcat command-line interface, which loads a
// catalog fixture into a registry and reports on it.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/oidcat/pkg/cli/clierror"
	"github.com/cockroachdb/oidcat/pkg/cli/exit"
	"github.com/cockroachdb/oidcat/pkg/util/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Proxy to allow overrides in tests.
var osStderr = os.Stderr

// isInteractive indicates whether stdout refers to a terminal, in which case
// results are rendered as tables by default.
var isInteractive = isatty.IsTerminal(os.Stdout.Fd())

var oidcatCmd = &cobra.Command{
	Use:   "oidcat [command] (flags)",
	Short: "catalog registry inspection tool",
	Long: `
Load a catalog fixture into a catalog registry and inspect the resulting
databases, tables, constraints and metrics.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.EnableCommandSorting = false

	oidcatCmd.AddCommand(
		inspectCmd,
		metricsCmd,
	)
}

// Main is the entry point for the cli, with a single line calling it intended
// to be the body of an action package main `main` func elsewhere. It is
// abstracted for reuse by duplicated `main` funcs in different distributions.
func Main() {
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "help")
	}
	err := Run(os.Args[1:])
	exit.WithCode(reportError(osStderr, err))
}

// reportError prints a command's error to w and returns the exit code for
// it. The log only gets a copy at verbosity 1 and above, so the terminal
// shows the error once.
func reportError(w io.Writer, err error) exit.Code {
	if err == nil {
		return exit.Success()
	}
	_ = clierror.CheckAndMaybeLog(err, logCommandError)
	clierror.OutputError(w, err, true)
	return clierror.GetExitCode(err)
}

func logCommandError(ctx context.Context, sev log.Severity, format string, args ...interface{}) {
	if log.V(1) {
		log.Logf(logtags.AddTag(ctx, "cli", nil), sev, format, args...)
	}
}

// Run runs the command with the given arguments.
func Run(args []string) error {
	initCLIDefaults()
	resetChangedFlags(oidcatCmd)
	oidcatCmd.SetArgs(args)
	return oidcatCmd.ExecuteContext(context.Background())
}

// resetChangedFlags forgets which flags were given by a previous invocation,
// so that environment defaults apply again.
func resetChangedFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	for _, sub := range cmd.Commands() {
		resetChangedFlags(sub)
	}
}
