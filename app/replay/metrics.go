package replay

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	ops       *prometheus.CounterVec
	scenarios *prometheus.CounterVec
	finalLen  prometheus.Histogram
}

func newMetrics() *metrics {
	return &metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dlist_replay",
			Name:      "ops_total",
			Help:      "The total number of replayed list operations",
		}, []string{"op"}),
		scenarios: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dlist_replay",
			Name:      "scenarios_total",
			Help:      "The total number of replayed scenarios",
		}, []string{"result"}),
		finalLen: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dlist_replay",
			Name:      "final_len",
			Help:      "The length of the list after the last step of a scenario",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

func (m *metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.ops, m.scenarios, m.finalLen}
}

func newMetricsReg() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewGoCollector())
	return reg
}

func regMetrics(r prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}
