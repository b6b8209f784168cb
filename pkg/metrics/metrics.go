// Package metrics counts what a coloring-tee run did and writes the counters
// in the Prometheus text format when the run ends.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
	"github.com/MilosSubotic/coloring-tee/pkg/errors"
)

// Recorder owns the run collectors. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	lines        prometheus.Counter
	bytes        prometheus.Counter
	matched      *prometheus.CounterVec
	openFailures *prometheus.CounterVec
	sinks        prometheus.Gauge
}

// New registers the collectors on a fresh registry
func New() (*Recorder, error) {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coloring_tee_lines_total",
			Help: "Input lines processed.",
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coloring_tee_input_bytes_total",
			Help: "Input bytes processed, line terminators excluded.",
		}),
		matched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coloring_tee_lines_matched_total",
			Help: "Lines colored by a rule, partitioned by color.",
		}, []string{"color"}),
		openFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coloring_tee_sink_open_failures_total",
			Help: "Output files that could not be opened, partitioned by sink kind.",
		}, []string{"kind"}),
		sinks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coloring_tee_sinks",
			Help: "Sinks receiving output.",
		}),
	}
	for _, collector := range []prometheus.Collector{
		r.lines,
		r.bytes,
		r.matched,
		r.openFailures,
		r.sinks,
	} {
		if err := r.registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register run collector: %w", err)
		}
	}
	return r, nil
}

// Registry returns the registry holding the collectors
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// LineProcessed counts one line of n bytes
func (r *Recorder) LineProcessed(n int) {
	if r == nil {
		return
	}
	r.lines.Inc()
	r.bytes.Add(float64(n))
}

// LineMatched counts a line colored c
func (r *Recorder) LineMatched(c colors.Color) {
	if r == nil {
		return
	}
	r.matched.WithLabelValues(c.String()).Inc()
}

// SinkOpenFailed counts an output that could not be opened
func (r *Recorder) SinkOpenFailed(kind string) {
	if r == nil {
		return
	}
	r.openFailures.WithLabelValues(kind).Inc()
}

// SetSinks records how many sinks receive output
func (r *Recorder) SetSinks(n int) {
	if r == nil {
		return
	}
	r.sinks.Set(float64(n))
}

// WriteTextfile writes the counters to path in the Prometheus text format
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, errors.ErrSinkWrite, "write metrics to %s", path).
			WithDetail("path", path)
	}
	return nil
}
