package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Registry collects benchmark metrics in-process. The tool never exposes a
// network listener; metrics are gathered and written as text exposition
// after the run when requested.
type Registry struct {
	reg *prometheus.Registry

	strategyDuration *prometheus.GaugeVec
	strategyAlloc    *prometheus.GaugeVec
	runsTotal        prometheus.Counter
	sampleCount      prometheus.Gauge
}

// NewRegistry creates a Registry with all benchmark collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		strategyDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "logbench",
			Name:      "strategy_duration_seconds",
			Help:      "Wall-clock duration of the last run of each strategy.",
		}, []string{"strategy"}),
		strategyAlloc: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "logbench",
			Name:      "strategy_alloc_bytes",
			Help:      "Heap bytes allocated during the last run of each strategy.",
		}, []string{"strategy"}),
		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logbench",
			Name:      "runs_total",
			Help:      "Number of completed benchmark runs.",
		}),
		sampleCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "logbench",
			Name:      "sample_count",
			Help:      "Number of samples in the benchmarked data set.",
		}),
	}

	reg.MustRegister(r.strategyDuration, r.strategyAlloc, r.runsTotal, r.sampleCount)
	return r
}

// ObserveStrategy records the outcome of one strategy execution.
func (r *Registry) ObserveStrategy(name string, d time.Duration, allocBytes uint64) {
	r.strategyDuration.WithLabelValues(name).Set(d.Seconds())
	r.strategyAlloc.WithLabelValues(name).Set(float64(allocBytes))
}

// ObserveRun records a completed benchmark run over n samples.
func (r *Registry) ObserveRun(n int) {
	r.runsTotal.Inc()
	r.sampleCount.Set(float64(n))
}

// WriteText gathers all collectors and writes the Prometheus text
// exposition format to out.
func (r *Registry) WriteText(out io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(out, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return fmt.Errorf("encoding metric family %q: %w", fam.GetName(), err)
		}
	}
	return nil
}
