// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package base

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/sql/catalog/catid"
	"github.com/cockroachdb/oidcat/pkg/util/log"
	"github.com/cockroachdb/oidcat/pkg/util/syncutil"
	"gopkg.in/yaml.v3"
)

// CatalogConfig holds the parameters needed to set up a catalog registry.
type CatalogConfig struct {
	// MetricsNamespace prefixes the exported metric names.
	MetricsNamespace string `yaml:"metrics_namespace"`

	// BootstrapDatabases are created when the registry starts, before any
	// caller can reach it.
	BootstrapDatabases []catid.DescID `yaml:"bootstrap_databases"`

	// Log configures the process-wide logger.
	Log log.Config `yaml:"log"`

	// Knobs is never read from a file.
	Knobs TestingKnobs `yaml:"-"`
}

// DefaultCatalogConfig returns the configuration used when nothing is
// specified.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{MetricsNamespace: DefaultMetricsNamespace}
}

// Validate checks the configuration for errors.
func (c *CatalogConfig) Validate() error {
	var seen syncutil.Set[catid.DescID]
	for _, id := range c.BootstrapDatabases {
		if id == catid.InvalidDescID {
			return errors.Newf("bootstrap database ID %d is invalid", id)
		}
		if !seen.Add(id) {
			return errors.Newf("bootstrap database ID %d listed twice", id)
		}
	}
	if c.Log.Verbosity < 0 {
		return errors.Newf("log verbosity must be non-negative, got %d", c.Log.Verbosity)
	}
	return nil
}

// ReadCatalogConfig decodes a YAML configuration on top of the defaults and
// validates it. Unknown fields are rejected.
func ReadCatalogConfig(r io.Reader) (CatalogConfig, error) {
	cfg := DefaultCatalogConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return CatalogConfig{}, errors.Wrap(err, "decoding catalog config")
	}
	if err := cfg.Validate(); err != nil {
		return CatalogConfig{}, err
	}
	return cfg, nil
}

// LoadCatalogConfig reads the configuration from a YAML file.
func LoadCatalogConfig(path string) (CatalogConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CatalogConfig{}, errors.Wrapf(err, "reading catalog config %q", path)
	}
	return ReadCatalogConfig(bytes.NewReader(data))
}
