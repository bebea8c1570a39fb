package workerpool

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK      = "ok"
	outcomeError   = "error"
	outcomePanic   = "panic"
	outcomeEnqueue = "enqueued"
)

// metrics holds the pool's prometheus collectors. A nil *metrics is a no-op.
type metrics struct {
	tasks *prometheus.CounterVec
	depth prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, pool string) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	m := &metrics{
		tasks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "drills_workerpool_tasks_total",
				Help:        "Tasks handled by the worker pool, by outcome.",
				ConstLabels: prometheus.Labels{"pool": pool},
			},
			[]string{"outcome"},
		),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "drills_workerpool_queue_depth",
			Help:        "Tasks waiting in the worker pool queue.",
			ConstLabels: prometheus.Labels{"pool": pool},
		}),
	}
	if err := reg.Register(m.tasks); err != nil {
		return nil, err
	}
	if err := reg.Register(m.depth); err != nil {
		reg.Unregister(m.tasks)
		return nil, err
	}

	return m, nil
}

func (m *metrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.tasks.WithLabelValues(outcome).Inc()
}

func (m *metrics) setDepth(n int) {
	if m == nil {
		return
	}
	m.depth.Set(float64(n))
}
