// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	prometheusgo "github.com/prometheus/client_model/go"
)

// Registry is a set of metrics exported under a common namespace. It
// implements prometheus.Gatherer.
type Registry struct {
	reg        *prometheus.Registry
	registerer prometheus.Registerer
}

var _ prometheus.Gatherer = (*Registry)(nil)

// NewRegistry creates a new Registry. A non-empty namespace is prepended to
// every exported metric name.
func NewRegistry(namespace string) *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{reg: reg, registerer: reg}
	if namespace != "" {
		r.registerer = prometheus.WrapRegistererWithPrefix(exportedName(namespace)+"_", reg)
	}
	return r
}

// AddMetric adds the passed-in metric to the registry.
func (r *Registry) AddMetric(c prometheus.Collector) error {
	return r.registerer.Register(c)
}

// AddMetricStruct examines all fields of metricStruct, which must be a
// pointer to a struct, and adds every exported field implementing
// prometheus.Collector.
func (r *Registry) AddMetricStruct(metricStruct interface{}) error {
	v := reflect.ValueOf(metricStruct)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.AssertionFailedf("expected pointer to struct, got %T", metricStruct)
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		field := v.Field(i)
		if field.Kind() == reflect.Ptr && field.IsNil() {
			continue
		}
		c, ok := field.Interface().(prometheus.Collector)
		if !ok {
			continue
		}
		if err := r.AddMetric(c); err != nil {
			return errors.Wrapf(err, "registering %s", t.Field(i).Name)
		}
	}
	return nil
}

// Gather implements prometheus.Gatherer.
func (r *Registry) Gather() ([]*prometheusgo.MetricFamily, error) {
	return r.reg.Gather()
}
