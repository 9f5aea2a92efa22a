// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/base"
	"github.com/cockroachdb/oidcat/pkg/cli/clierror"
	"github.com/cockroachdb/oidcat/pkg/cli/exit"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catalogregistry"
	"github.com/cockroachdb/oidcat/pkg/util/log"
	"github.com/cockroachdb/oidcat/pkg/util/metric"
)

// cliContext captures the command-line parameters shared by all commands.
type cliContext struct {
	// configPath is the catalog configuration file, if any.
	configPath string

	// verbosity overrides the configured log verbosity when non-negative.
	verbosity int

	// redactableLogs overrides the configured log redactability when set.
	redactableLogs bool

	// tableDisplayFormat indicates how to format result tables.
	tableDisplayFormat tableDisplayFormat
}

var cliCtx cliContext

// inspectCtx captures the parameters of the inspect command.
var inspectCtx struct {
	fixturePath     string
	databaseID      int
	showConstraints bool
}

// metricsCtx captures the parameters of the metrics command.
var metricsCtx struct {
	fixturePath      string
	graphiteEndpoint string
}

// initCLIDefaults sets up the default values in the context structs. Tests
// call it between command invocations.
func initCLIDefaults() {
	cliCtx = cliContext{verbosity: -1, tableDisplayFormat: tableDisplayTSV}
	if isInteractive {
		cliCtx.tableDisplayFormat = tableDisplayTable
	}

	inspectCtx.fixturePath = ""
	inspectCtx.databaseID = 0
	inspectCtx.showConstraints = false

	metricsCtx.fixturePath = ""
	metricsCtx.graphiteEndpoint = ""
}

// loadConfig reads the configuration file, if any, and applies the
// command-line overrides.
func loadConfig() (base.CatalogConfig, error) {
	cfg := base.DefaultCatalogConfig()
	if cliCtx.configPath != "" {
		var err error
		if cfg, err = base.LoadCatalogConfig(cliCtx.configPath); err != nil {
			return cfg, clierror.NewError(err, exit.CommandLineFlagError())
		}
	}
	if cliCtx.verbosity >= 0 {
		cfg.Log.Verbosity = log.Level(cliCtx.verbosity)
	}
	if cliCtx.redactableLogs {
		cfg.Log.Redactable = true
	}
	return cfg, nil
}

// catalogEnv is a registry set up from the command-line parameters, along
// with the metric registry it reports to.
type catalogEnv struct {
	cfg        base.CatalogConfig
	metrics    *metric.Registry
	registry   *catalogregistry.Registry
	restoreLog func()
}

// openCatalog configures logging, creates a registry and loads the fixture
// at fixturePath into it. The caller must close the result.
func openCatalog(ctx context.Context, fixturePath string) (*catalogEnv, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	restoreLog, err := log.ApplyConfig(cfg.Log)
	if err != nil {
		return nil, clierror.NewError(err, exit.LoggingFileUnavailable())
	}
	env := &catalogEnv{
		cfg:        cfg,
		metrics:    metric.NewRegistry(cfg.MetricsNamespace),
		restoreLog: restoreLog,
	}
	env.registry, err = catalogregistry.NewRegistry(ctx, cfg, env.metrics)
	if err != nil {
		restoreLog()
		return nil, err
	}
	if fixturePath != "" {
		fixture, err := loadFixtureFile(fixturePath)
		if err == nil {
			err = fixture.apply(ctx, env.registry)
		}
		if err != nil {
			env.close(ctx)
			return nil, clierror.NewError(
				errors.Wrapf(err, "loading %s", fixturePath), exit.FixtureValidationFailed())
		}
		log.Infof(ctx, "loaded %d databases from %s",
			env.registry.DatabaseCount(), fixturePath)
	}
	return env, nil
}

func (e *catalogEnv) close(ctx context.Context) {
	e.registry.Close(ctx)
	e.restoreLog()
}
