// pkg/core/router.go
package core

import (
	"sort"

	"go.uber.org/zap"
)

// Router dispatches a route key to exactly one handler. The table is fixed at
// construction, so a Router is safe for concurrent use.
type Router struct {
	table map[string]Handler
	keys  []string
	log   *zap.Logger
}

type Option func(*Router)

// WithLogger logs unmatched routes at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRouter copies routes; later changes to the map do not affect the Router.
// Nil handlers are dropped.
func NewRouter(routes Routes, opts ...Option) *Router {
	r := &Router{
		table: make(map[string]Handler, len(routes)),
		log:   zap.NewNop(),
	}
	for k, h := range routes {
		if h == nil {
			continue
		}
		r.table[k] = h
		r.keys = append(r.keys, k)
	}
	sort.Strings(r.keys)
	for _, o := range opts {
		o(r)
	}
	return r
}

// Dispatch runs the handler registered under route (exact, case-sensitive match)
// and returns its Output untouched. Unknown routes yield NotFound(route).
func (r *Router) Dispatch(route string, in Input) Output {
	if h, ok := r.table[route]; ok {
		return h(in)
	}
	r.log.Debug("route not found", zap.String("route", route), zap.Int("fields", in.Len()))
	return NotFound(route)
}

// Routes returns the registered keys in sorted order.
func (r *Router) Routes() []string {
	return append([]string(nil), r.keys...)
}

// NotFound is the uniform response for an unknown route key.
func NotFound(route string) Output {
	return Response(
		F("error", "Route not found: "+route),
		F("success", false),
	)
}
