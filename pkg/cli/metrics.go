// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/oidcat/pkg/cli/clierror"
	"github.com/cockroachdb/oidcat/pkg/cli/exit"
	"github.com/cockroachdb/oidcat/pkg/util/log"
	"github.com/cockroachdb/oidcat/pkg/util/metric"
	"github.com/dustin/go-humanize"
	prometheusgo "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics [--fixture <file>]",
	Short: "show the catalog metrics after loading a fixture",
	Long: `
Create a registry with the configured bootstrap databases, load the
catalog fixture if one is given, and print the catalog metrics. With
--graphite-endpoint, the metrics are also pushed to a Graphite server.
`,
	Args: cobra.NoArgs,
	RunE: runMetrics,
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := openCatalog(ctx, metricsCtx.fixturePath)
	if err != nil {
		return err
	}
	defer env.close(ctx)

	families, err := env.metrics.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	rows := make([][]string, 0, len(families))
	for _, f := range families {
		for _, m := range f.GetMetric() {
			rows = append(rows, []string{f.GetName(), metricKind(f.GetType()), formatMetricValue(f.GetType(), m)})
		}
	}
	if err := printTable(cmd.OutOrStdout(), []string{"metric", "type", "value"}, rows,
		cliCtx.tableDisplayFormat); err != nil {
		return err
	}

	if metricsCtx.graphiteEndpoint != "" {
		exporter := metric.MakeGraphiteExporter(env.metrics)
		if err := exporter.Push(ctx, metricsCtx.graphiteEndpoint); err != nil {
			return clierror.NewError(
				errors.Wrapf(err, "pushing metrics to %s", metricsCtx.graphiteEndpoint),
				exit.MetricsPushFailed())
		}
		log.Infof(ctx, "pushed %d metrics to %s", len(rows), metricsCtx.graphiteEndpoint)
	}
	return nil
}

func metricKind(t prometheusgo.MetricType) string {
	switch t {
	case prometheusgo.MetricType_COUNTER:
		return "counter"
	case prometheusgo.MetricType_GAUGE:
		return "gauge"
	default:
		return "other"
	}
}

func formatMetricValue(t prometheusgo.MetricType, m *prometheusgo.Metric) string {
	var v float64
	switch t {
	case prometheusgo.MetricType_COUNTER:
		v = m.GetCounter().GetValue()
	case prometheusgo.MetricType_GAUGE:
		v = m.GetGauge().GetValue()
	default:
		return ""
	}
	if v == math.Trunc(v) && math.Abs(v) < math.MaxInt64 {
		return humanize.Comma(int64(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
