// Package prom exposes pool activity as Prometheus metrics.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer implements pool.Observer on top of prometheus collectors.
// Create one per pool, register it with a Registerer, and pass it to the
// pool via pool.WithObserver.
type Observer struct {
	tasksSubmitted prometheus.Counter
	tasksPanicked  prometheus.Counter
	tasksActive    prometheus.Gauge
	taskDuration   prometheus.Histogram
	scopesOpened   prometheus.Counter
	scopeWait      prometheus.Histogram
	workersActive  prometheus.Gauge
}

// New builds an Observer whose metrics carry the given pool label. Use
// the same value as pool.WithLabel so logs and metrics line up.
func New(label string) *Observer {
	constLabels := prometheus.Labels{"pool": label}
	return &Observer{
		tasksSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "pool_tasks_submitted_total",
			Help:        "Number of tasks submitted to the pool.",
			ConstLabels: constLabels,
		}),
		tasksPanicked: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "pool_tasks_panicked_total",
			Help:        "Number of tasks that panicked and were contained.",
			ConstLabels: constLabels,
		}),
		tasksActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "pool_tasks_active",
			Help:        "Number of tasks currently executing.",
			ConstLabels: constLabels,
		}),
		taskDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "pool_task_duration_seconds",
			Help:        "Task execution time.",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(0.0001, 2, 16),
		}),
		scopesOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "pool_scopes_opened_total",
			Help:        "Number of scopes opened on the pool.",
			ConstLabels: constLabels,
		}),
		scopeWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "pool_scope_wait_seconds",
			Help:        "Time a scope spent waiting for its tasks after the body returned.",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(0.0001, 2, 16),
		}),
		workersActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "pool_workers_active",
			Help:        "Number of live worker goroutines.",
			ConstLabels: constLabels,
		}),
	}
}

// Register registers all collectors with r.
func (o *Observer) Register(r prometheus.Registerer) error {
	for _, c := range o.collectors() {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister registers all collectors with the default registry and
// panics on conflict.
func (o *Observer) MustRegister() {
	prometheus.MustRegister(o.collectors()...)
}

func (o *Observer) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		o.tasksSubmitted,
		o.tasksPanicked,
		o.tasksActive,
		o.taskDuration,
		o.scopesOpened,
		o.scopeWait,
		o.workersActive,
	}
}

func (o *Observer) TaskSubmitted() { o.tasksSubmitted.Inc() }

func (o *Observer) TaskStarted() { o.tasksActive.Inc() }

func (o *Observer) TaskFinished(dur time.Duration, panicked bool) {
	o.tasksActive.Dec()
	o.taskDuration.Observe(dur.Seconds())
	if panicked {
		o.tasksPanicked.Inc()
	}
}

func (o *Observer) ScopeOpened() { o.scopesOpened.Inc() }

func (o *Observer) ScopeClosed(wait time.Duration) { o.scopeWait.Observe(wait.Seconds()) }

func (o *Observer) WorkerUp() { o.workersActive.Inc() }

func (o *Observer) WorkerDown() { o.workersActive.Dec() }
