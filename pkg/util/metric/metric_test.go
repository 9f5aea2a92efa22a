// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type testMetrics struct {
	Lookups *Counter
	Live    *Gauge
	Skipped *Counter
	note    string
}

func TestCounterAndGauge(t *testing.T) {
	c := NewCounter(Metadata{Name: "catalog.lookups", Help: "lookups"})
	c.Inc(2)
	c.Inc(3)
	require.EqualValues(t, 5, c.Count())
	require.Equal(t, 5.0, testutil.ToFloat64(c))

	g := NewGauge(Metadata{Name: "catalog.live", Help: "live"})
	g.Update(10)
	g.Inc(2)
	g.Dec(5)
	require.EqualValues(t, 7, g.Value())
}

func TestRegistryAddMetricStruct(t *testing.T) {
	r := NewRegistry("oidcat")
	m := &testMetrics{
		Lookups: NewCounter(Metadata{Name: "catalog.lookups", Help: "lookups"}),
		Live:    NewGauge(Metadata{Name: "catalog.live-objects", Help: "live"}),
	}
	require.NoError(t, r.AddMetricStruct(m))
	m.Lookups.Inc(1)

	families, err := r.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.ElementsMatch(t, []string{"oidcat_catalog_lookups", "oidcat_catalog_live_objects"}, names)

	// Registering the same collectors twice is rejected.
	require.Error(t, r.AddMetricStruct(m))
	require.Error(t, r.AddMetricStruct(*m))
}

func TestGraphiteExporterPush(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			received <- ""
			return
		}
		defer conn.Close()
		var sb strings.Builder
		s := bufio.NewScanner(conn)
		for s.Scan() {
			sb.WriteString(s.Text())
			sb.WriteByte('\n')
		}
		received <- sb.String()
	}()

	r := NewRegistry("")
	c := NewCounter(Metadata{Name: "catalog.lookups", Help: "lookups"})
	require.NoError(t, r.AddMetric(c))
	c.Inc(4)

	ge := MakeGraphiteExporter(r)
	require.Error(t, ge.Push(context.Background(), ""))
	require.NoError(t, ge.Push(context.Background(), ln.Addr().String()))
	require.Contains(t, <-received, ".oidcat.catalog_lookups 4 ")
}
