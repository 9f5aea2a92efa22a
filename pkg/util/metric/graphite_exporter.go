// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/util/log"
	"github.com/prometheus/client_golang/prometheus/graphite"
)

var errNoEndpoint = errors.New("graphite endpoint is not set")

// GraphiteExporter pushes the metrics of a Registry to a Graphite or Carbon
// server.
type GraphiteExporter struct {
	reg *Registry
}

// MakeGraphiteExporter returns an initialized graphite exporter.
func MakeGraphiteExporter(reg *Registry) GraphiteExporter {
	return GraphiteExporter{reg: reg}
}

// Push metrics gathered from the registry to a Graphite or Carbon server.
func (ge *GraphiteExporter) Push(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return errNoEndpoint
	}
	h, err := os.Hostname()
	if err != nil {
		return err
	}
	b, err := graphite.NewBridge(&graphite.Config{
		URL:           endpoint,
		Gatherer:      ge.reg,
		Prefix:        fmt.Sprintf("%s.oidcat", h),
		Timeout:       10 * time.Second,
		ErrorHandling: graphite.AbortOnError,
		Logger:        log.NewStdLogger(log.SeverityWarning, "graphite"),
	})
	if err != nil {
		return err
	}
	if err := b.Push(); err != nil {
		return err
	}
	log.VEventf(ctx, 1, "pushed metrics to %s", endpoint)
	return nil
}
