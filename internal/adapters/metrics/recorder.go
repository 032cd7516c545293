// Package metrics implements ports.Metrics with Prometheus collectors.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/zerr"
)

const namespace = "ladder"

// Recorder holds the ladder collectors on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	CacheLookups  *prometheus.CounterVec
	GraphBuilds   prometheus.Counter
	BuildDuration prometheus.Histogram
	GraphNodes    prometheus.Gauge
	GraphEdges    prometheus.Gauge
	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_cache_lookups_total",
			Help:      "Total number of graph lookups by result",
		}, []string{"result"}),
		GraphBuilds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_builds_total",
			Help:      "Total number of graphs built from a dictionary",
		}),
		BuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_build_duration_seconds",
			Help:      "Time spent building word graphs",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		GraphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Number of words in the most recently built graph",
		}),
		GraphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Number of edges in the most recently built graph",
		}),
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_queries_total",
			Help:      "Total number of path queries by kind and outcome",
		}, []string{"kind", "outcome"}),
		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_query_duration_seconds",
			Help:      "Latency of path queries",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"kind"}),
	}
}

// CacheLookup counts a graph lookup by result.
func (r *Recorder) CacheLookup(result string) {
	r.CacheLookups.WithLabelValues(result).Inc()
}

// GraphBuilt records a graph construction.
func (r *Recorder) GraphBuilt(nodes, edges int, elapsed time.Duration) {
	r.GraphBuilds.Inc()
	r.BuildDuration.Observe(elapsed.Seconds())
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// Query records a path query.
func (r *Recorder) Query(kind, outcome string, elapsed time.Duration) {
	r.Queries.WithLabelValues(kind, outcome).Inc()
	r.QueryDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// Registry returns the registry the collectors are registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes every collected metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return zerr.Wrap(err, "failed to gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return zerr.Wrap(err, "failed to write metrics")
		}
	}
	return nil
}
