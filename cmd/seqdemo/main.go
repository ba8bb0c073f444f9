// Command seqdemo builds a few sequence pipelines and logs their results.
package main

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

func main() {
	if err := run(context.Background()); err != nil {
		logger.Error("seqdemo failed", logger.Fields(logger.FieldError, err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load[DemoConfig](serviceName)
	if err != nil {
		return err
	}

	logger.Init(cfg.Logging)
	log := logger.Get(serviceName).WithFields(logger.Fields("run_id", uuid.NewString()))
	log.Info("starting", logger.Fields(
		"environment", cfg.Environment,
		"version", cfg.Version,
		"scenarios", cfg.Scenarios,
	))

	shutdown, err := initObservability(ctx, cfg)
	if err != nil {
		return err
	}
	defer shutdown()

	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		return err
	}

	r := &runner{log: log, metrics: metrics}
	return r.run(ctx, cfg.Scenarios)
}

// initObservability starts the exporters enabled in cfg and returns a
// function flushing and stopping them.
func initObservability(ctx context.Context, cfg *DemoConfig) (func(), error) {
	var stops []func(context.Context) error
	shutdown := func() {
		for _, stop := range stops {
			if err := stop(ctx); err != nil {
				logger.Warn("observability shutdown failed", logger.Fields(logger.FieldError, err.Error()))
			}
		}
	}

	oc := cfg.Observability
	if oc.Metrics {
		mc := observability.DefaultMeterConfig(cfg.Name)
		mc.ServiceVersion = cfg.Version
		mc.Environment = cfg.Environment
		mc.Endpoint = oc.Endpoint
		mc.Insecure = oc.Insecure
		mp, err := observability.InitMeter(ctx, &mc)
		if err != nil {
			return shutdown, err
		}
		stops = append(stops, mp.Shutdown)
	}
	if oc.Tracing {
		tc := observability.DefaultTracerConfig(cfg.Name)
		tc.ServiceVersion = cfg.Version
		tc.Environment = cfg.Environment
		tc.Endpoint = oc.Endpoint
		tc.Insecure = oc.Insecure
		tc.SampleRate = oc.SampleRate
		tp, err := observability.InitTracer(ctx, tc)
		if err != nil {
			shutdown()
			return func() {}, err
		}
		stops = append(stops, tp.Shutdown)
	}
	return shutdown, nil
}
