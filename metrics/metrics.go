// SPDX-License-Identifier: MIT

// Package metrics exports solver progress as Prometheus metrics.
//
// A Collector owns a private registry so that several runs in one process do
// not collide, and implements eigen.Observer so it plugs into a solver with
// eigen.WithObserver. Batch runs can dump the registry to a node-exporter
// textfile with WriteTextfile.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/topeigen/eigen"
)

const namespace = "topeigen"

// Collector records one observation per converged eigenpair.
type Collector struct {
	reg *prometheus.Registry

	slots      prometheus.Counter
	converged  prometheus.Counter
	undefined  prometheus.Counter
	multiplies prometheus.Counter
	iterations prometheus.Histogram
	duration   prometheus.Histogram
	eigenvalue *prometheus.GaugeVec
}

// NewCollector builds a Collector with every metric registered on a fresh
// registry.
func NewCollector() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		slots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_total",
			Help:      "Eigenpairs extracted.",
		}),
		converged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "converged_slots_total",
			Help:      "Eigenpairs that stopped early on the tolerance rule.",
		}),
		undefined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "undefined_estimates_total",
			Help:      "Eigenpairs whose eigenvalue estimate was NaN or infinite.",
		}),
		multiplies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "multiplies_total",
			Help:      "Sparse matrix-vector products performed.",
		}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slot_iterations",
			Help:      "Power iterations spent per eigenpair.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slot_duration_seconds",
			Help:      "Wall time spent per eigenpair.",
			Buckets:   prometheus.DefBuckets,
		}),
		eigenvalue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "eigenvalue",
			Help:      "Estimated eigenvalue by extraction slot.",
		}, []string{"slot"}),
	}
	c.reg.MustRegister(c.slots, c.converged, c.undefined, c.multiplies, c.iterations, c.duration, c.eigenvalue)

	return c
}

// ObserveSlot implements eigen.Observer.
func (c *Collector) ObserveSlot(st eigen.SlotStats) {
	c.slots.Inc()
	if st.Converged {
		c.converged.Inc()
	}
	if st.ValueUndefined {
		c.undefined.Inc()
	}
	c.multiplies.Add(float64(st.Multiplies))
	c.iterations.Observe(float64(st.Iterations))
	c.duration.Observe(st.Duration.Seconds())
	c.eigenvalue.WithLabelValues(strconv.Itoa(st.Slot)).Set(st.Value)
}

// Registry exposes the underlying registry, e.g. for promhttp or tests.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// WriteTextfile writes the current metric values to path in the text
// exposition format. The file is written atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

var _ eigen.Observer = (*Collector)(nil)
