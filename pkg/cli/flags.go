// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"

	"github.com/cockroachdb/oidcat/pkg/cli/cliflags"
	"github.com/cockroachdb/oidcat/pkg/cli/clierror"
	"github.com/cockroachdb/oidcat/pkg/cli/exit"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddPersistentPreRunE add 'fn' as a persistent pre-run function to 'cmd'.
// If the command has an existing pre-run function, it is saved and will be called
// at the beginning of 'fn'.
func AddPersistentPreRunE(cmd *cobra.Command, fn func(*cobra.Command, []string) error) {
	// Save any existing hooks.
	wrapped := cmd.PersistentPreRunE

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Run the previous hook if it exists.
		if wrapped != nil {
			if err := wrapped(cmd, args); err != nil {
				return err
			}
		}

		// Now we can call the new function.
		return fn(cmd, args)
	}
}

// setFlagFromEnv sets the flag from its environment variable, unless it was
// given on the command line.
func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) error {
	if flagInfo.EnvVar == "" || f.Changed(flagInfo.Name) {
		return nil
	}
	if value, set := os.LookupEnv(flagInfo.EnvVar); set {
		if err := f.Set(flagInfo.Name, value); err != nil {
			return clierror.NewError(err, exit.CommandLineFlagError())
		}
	}
	return nil
}

// envFlags lists, per flag set, the flags that can be controlled from the
// environment.
var envFlags = map[*pflag.FlagSet][]cliflags.FlagInfo{}

func registerEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		envFlags[f] = append(envFlags[f], flagInfo)
	}
}

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, *valPtr, flagInfo.Usage())
	registerEnv(f, flagInfo)
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, *valPtr, flagInfo.Usage())
	registerEnv(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, *valPtr, flagInfo.Usage())
	registerEnv(f, flagInfo)
}

// VarFlag creates a custom-variable flag and registers it with the FlagSet.
func VarFlag(f *pflag.FlagSet, value pflag.Value, flagInfo cliflags.FlagInfo) {
	f.VarP(value, flagInfo.Name, flagInfo.Shorthand, flagInfo.Usage())
	registerEnv(f, flagInfo)
}

// applyEnvFlags is run after command-line parsing and fills in the flags
// that were not given explicitly from the environment.
func applyEnvFlags(cmd *cobra.Command, _ []string) error {
	for _, fs := range []*pflag.FlagSet{oidcatCmd.PersistentFlags(), cmd.Flags()} {
		for _, info := range envFlags[fs] {
			if err := setFlagFromEnv(fs, info); err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	initCLIDefaults()

	AddPersistentPreRunE(oidcatCmd, applyEnvFlags)

	{
		pf := oidcatCmd.PersistentFlags()
		StringFlag(pf, &cliCtx.configPath, cliflags.Config)
		IntFlag(pf, &cliCtx.verbosity, cliflags.Verbosity)
		BoolFlag(pf, &cliCtx.redactableLogs, cliflags.Redactable)
		VarFlag(pf, &cliCtx.tableDisplayFormat, cliflags.TableDisplayFormat)
	}

	{
		f := inspectCmd.Flags()
		StringFlag(f, &inspectCtx.fixturePath, cliflags.Fixture)
		IntFlag(f, &inspectCtx.databaseID, cliflags.Database)
		BoolFlag(f, &inspectCtx.showConstraints, cliflags.ShowConstraints)
	}

	{
		f := metricsCmd.Flags()
		StringFlag(f, &metricsCtx.fixturePath, cliflags.Fixture)
		StringFlag(f, &metricsCtx.graphiteEndpoint, cliflags.GraphiteEndpoint)
	}
}
