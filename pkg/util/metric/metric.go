// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	prometheusgo "github.com/prometheus/client_model/go"
)

// Metadata holds the name and help text of a metric.
type Metadata struct {
	Name string
	Help string
}

// exportedName converts a dotted metric name to a valid Prometheus name.
func exportedName(name string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(name)
}

// Counter is a monotonically increasing int64 counter.
type Counter struct {
	Metadata
	prometheus.Counter
}

// NewCounter creates a counter.
func NewCounter(metadata Metadata) *Counter {
	return &Counter{
		Metadata: metadata,
		Counter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: exportedName(metadata.Name),
			Help: metadata.Help,
		}),
	}
}

// Inc increments the counter by v.
func (c *Counter) Inc(v int64) {
	c.Counter.Add(float64(v))
}

// Count returns the current value of the counter.
func (c *Counter) Count() int64 {
	var m prometheusgo.Metric
	if err := c.Counter.Write(&m); err != nil {
		return 0
	}
	return int64(m.GetCounter().GetValue())
}

// Gauge is an int64 value that can go up and down.
type Gauge struct {
	Metadata
	prometheus.Gauge
}

// NewGauge creates a gauge.
func NewGauge(metadata Metadata) *Gauge {
	return &Gauge{
		Metadata: metadata,
		Gauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: exportedName(metadata.Name),
			Help: metadata.Help,
		}),
	}
}

// Update sets the gauge's value.
func (g *Gauge) Update(v int64) {
	g.Gauge.Set(float64(v))
}

// Inc increments the gauge's value.
func (g *Gauge) Inc(v int64) {
	g.Gauge.Add(float64(v))
}

// Dec decrements the gauge's value.
func (g *Gauge) Dec(v int64) {
	g.Gauge.Sub(float64(v))
}

// Value returns the gauge's current value.
func (g *Gauge) Value() int64 {
	var m prometheusgo.Metric
	if err := g.Gauge.Write(&m); err != nil {
		return 0
	}
	return int64(m.GetGauge().GetValue())
}
