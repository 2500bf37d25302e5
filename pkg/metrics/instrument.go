package metrics

import (
	"time"

	"github.com/joeydtaylor/steeze-lite/pkg/core"
)

type instrumented struct {
	next  core.Dispatcher
	c     *Collector
	known map[string]struct{}
}

// Instrument counts every dispatch through d. The Output is returned as-is.
func Instrument(d core.Dispatcher, c *Collector) core.Dispatcher {
	known := make(map[string]struct{})
	for _, k := range d.Routes() {
		known[k] = struct{}{}
	}
	return &instrumented{next: d, c: c, known: known}
}

func (i *instrumented) Dispatch(route string, in core.Input) core.Output {
	start := time.Now()
	out := i.next.Dispatch(route, in)
	i.c.dispatchSeconds.Observe(time.Since(start).Seconds())

	if _, ok := i.known[route]; ok {
		i.c.dispatchTotal.WithLabelValues(route, OutcomeMatched).Inc()
	} else {
		i.c.dispatchTotal.WithLabelValues(unmatchedLabel, OutcomeNotFound).Inc()
	}
	return out
}

func (i *instrumented) Routes() []string { return i.next.Routes() }
