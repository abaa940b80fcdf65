// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the interface service layers record against.
type Collector interface {
	RecordPayslipComputed(duration time.Duration)
	RecordComputeFailure()
	RecordIntervalFlagged(kind string)
	RecordAttendancesSeeded(count int)
}

type PrometheusCollector struct {
	payslipsComputed prometheus.Counter
	computeFailures  prometheus.Counter
	computeLatency   prometheus.Histogram
	intervalsFlagged *prometheus.CounterVec
	seededRecords    prometheus.Counter
}

// NewCollector creates a collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		payslipsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shiftpay_payslips_computed_total",
			Help: "Total number of payslip computations that completed",
		}),
		computeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shiftpay_payslip_compute_failures_total",
			Help: "Total number of payslip computations that failed",
		}),
		computeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shiftpay_payslip_compute_seconds",
			Help:    "Latency of one payslip computation in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		intervalsFlagged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shiftpay_intervals_flagged_total",
			Help: "Attendance intervals flagged during aggregation, by issue kind",
		}, []string{"kind"}),
		seededRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shiftpay_attendances_seeded_total",
			Help: "Total number of synthetic attendance records generated",
		}),
	}

	reg.MustRegister(
		c.payslipsComputed,
		c.computeFailures,
		c.computeLatency,
		c.intervalsFlagged,
		c.seededRecords,
	)

	return c
}

func (c *PrometheusCollector) RecordPayslipComputed(duration time.Duration) {
	c.payslipsComputed.Inc()
	c.computeLatency.Observe(duration.Seconds())
}

func (c *PrometheusCollector) RecordComputeFailure() {
	c.computeFailures.Inc()
}

func (c *PrometheusCollector) RecordIntervalFlagged(kind string) {
	c.intervalsFlagged.WithLabelValues(kind).Inc()
}

func (c *PrometheusCollector) RecordAttendancesSeeded(count int) {
	c.seededRecords.Add(float64(count))
}

// Handler exposes the registry in Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Noop is a Collector that records nothing. Used in tests.
type Noop struct{}

func (Noop) RecordPayslipComputed(time.Duration) {}
func (Noop) RecordComputeFailure()               {}
func (Noop) RecordIntervalFlagged(string)        {}
func (Noop) RecordAttendancesSeeded(int)         {}
