package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeMatched  = "matched"
	OutcomeNotFound = "not_found"

	// unmatched keys are caller-controlled; collapse them to bound label cardinality
	unmatchedLabel = "<unmatched>"
)

type Collector struct {
	dispatchTotal   *prometheus.CounterVec
	dispatchSeconds prometheus.Histogram
}

// NewCollector registers the dispatch metrics with reg. Registering twice
// against the same registry reuses the existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		dispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "steeze_dispatch_total", Help: "dispatches by route and outcome"},
			[]string{"route", "outcome"},
		),
		dispatchSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "steeze_dispatch_seconds",
				Help:    "handler time per dispatch.",
				Buckets: []float64{.00001, .0001, .001, .01, .1, 1},
			},
		),
	}
	var err error
	if c.dispatchTotal, err = register(reg, c.dispatchTotal); err != nil {
		return nil, err
	}
	if c.dispatchSeconds, err = register(reg, c.dispatchSeconds); err != nil {
		return nil, err
	}
	return c, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}
