package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "asceticrx"
	metricsSubsystem = "scheduler"
)

type metrics struct {
	scheduled prometheus.Counter
	run       prometheus.Counter
	pending   prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, loop string) *metrics {
	labels := prometheus.Labels{"loop": loop}
	m := &metrics{
		scheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "tasks_scheduled_total",
			Help:        "Total number of tasks queued on the loop.",
			ConstLabels: labels,
		}),
		run: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "tasks_run_total",
			Help:        "Total number of tasks executed by the loop.",
			ConstLabels: labels,
		}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "tasks_pending",
			Help:        "Number of tasks waiting to run.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(m.scheduled, m.run, m.pending)
	return m
}

func (m *metrics) taskScheduled(pending int) {
	if m == nil {
		return
	}
	m.scheduled.Inc()
	m.pending.Set(float64(pending))
}

func (m *metrics) taskRun(pending int) {
	if m == nil {
		return
	}
	m.run.Inc()
	m.pending.Set(float64(pending))
}
