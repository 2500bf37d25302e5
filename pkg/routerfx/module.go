package routerfx

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/joeydtaylor/steeze-lite/pkg/config"
	"github.com/joeydtaylor/steeze-lite/pkg/core"
	"github.com/joeydtaylor/steeze-lite/pkg/logger"
	"github.com/joeydtaylor/steeze-lite/pkg/metrics"
)

// ---------- Options ----------

// BaseFunc builds the dispatcher being wrapped. It receives the module logger
// so a core.Router can log misses through it.
type BaseFunc func(*zap.Logger) core.Dispatcher

// FromRoutes wraps a static table in a logging core.Router.
func FromRoutes(routes core.Routes) BaseFunc {
	return func(l *zap.Logger) core.Dispatcher {
		return core.NewRouter(routes, core.WithLogger(l))
	}
}

// Static uses an existing dispatcher, e.g. a generated one.
func Static(d core.Dispatcher) BaseFunc {
	return func(*zap.Logger) core.Dispatcher { return d }
}

type settings struct {
	cfg    *config.Config
	logger *zap.Logger
}

type Option func(*settings)

func WithConfig(c config.Config) Option { return func(s *settings) { s.cfg = &c } }
func WithLogger(l *zap.Logger) Option   { return func(s *settings) { s.logger = l } }

// Module provides config.Config, *zap.Logger, a private Prometheus registry
// (as Registerer and Gatherer), *metrics.Collector and the instrumented
// core.Dispatcher. Add app-specific fx.Invoke/fx.Populate alongside.
func Module(base BaseFunc, opts ...Option) fx.Option {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	return fx.Options(
		fx.Provide(func() (config.Config, error) {
			if s.cfg != nil {
				return *s.cfg, nil
			}
			return config.Load()
		}),
		fx.Provide(func(cfg config.Config) (*zap.Logger, error) {
			if s.logger != nil {
				return s.logger, nil
			}
			l, err := logger.New(logger.Config{Level: cfg.LogLevel, Dir: cfg.LogDir})
			if err != nil {
				return nil, err
			}
			return l.With(zap.String("service", cfg.Service)), nil
		}),
		fx.WithLogger(func(zl *zap.Logger) fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: zl.Named("fx")}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			prometheus.NewRegistry,
			func(r *prometheus.Registry) prometheus.Registerer { return r },
			func(r *prometheus.Registry) prometheus.Gatherer { return r },
		),
		fx.Provide(metrics.NewCollector),
		fx.Provide(func(zl *zap.Logger, c *metrics.Collector) core.Dispatcher {
			return metrics.Instrument(base(zl), c)
		}),
		fx.Invoke(registerHooks),
	)
}

// ---------- Lifecycle ----------

func registerHooks(lc fx.Lifecycle, zl *zap.Logger, d core.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			zl.Debug("router ready", zap.Strings("routes", d.Routes()))
			return nil
		},
		OnStop: func(context.Context) error {
			// stderr sync fails with EINVAL on some platforms; nothing to recover
			_ = zl.Sync()
			return nil
		},
	})
}
