package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/seqkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry instruments for sequence pipelines.
type Metrics struct {
	pullTotal         metric.Int64Counter
	exhaustedTotal    metric.Int64Counter
	operationTotal    metric.Int64Counter
	operationDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	pullTotal, err := meter.Int64Counter(MetricPullTotal,
		metric.WithDescription("Values yielded by an observed sequence stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricPullTotal, err)
	}

	exhaustedTotal, err := meter.Int64Counter(MetricExhaustedTotal,
		metric.WithDescription("Pulls that found an observed sequence stage exhausted"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricExhaustedTotal, err)
	}

	operationTotal, err := meter.Int64Counter(MetricOperationTotal,
		metric.WithDescription("Total number of pipeline runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricOperationTotal, err)
	}

	operationDuration, err := meter.Float64Histogram(MetricOperationDuration,
		metric.WithDescription("Duration of pipeline runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricOperationDuration, err)
	}

	return &Metrics{
		pullTotal:         pullTotal,
		exhaustedTotal:    exhaustedTotal,
		operationTotal:    operationTotal,
		operationDuration: operationDuration,
	}, nil
}

// RecordPull records one pull of a stage. ok is false for the pull that
// found the stage exhausted.
func (m *Metrics) RecordPull(ctx context.Context, stage string, ok bool) {
	attrs := metric.WithAttributes(attribute.String(AttrStage, stage))
	if ok {
		m.pullTotal.Add(ctx, 1, attrs)
		return
	}
	m.exhaustedTotal.Add(ctx, 1, attrs)
}

// RecordOperation records a completed pipeline run.
func (m *Metrics) RecordOperation(ctx context.Context, operation, status string, duration time.Duration) {
	m.operationTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrOperationName, operation),
		attribute.String(AttrStatus, status),
	))
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrOperationName, operation),
	))
}

// Recorder binds the metrics to ctx so they can observe sequence pulls.
func (m *Metrics) Recorder(ctx context.Context) *PullRecorder {
	return &PullRecorder{ctx: ctx, metrics: m}
}

// PullRecorder records sequence pulls into Metrics. It satisfies
// sequence.PullObserver.
type PullRecorder struct {
	ctx     context.Context
	metrics *Metrics
}

// ObservePull records a single pull.
func (r *PullRecorder) ObservePull(stage string, ok bool) {
	r.metrics.RecordPull(r.ctx, stage, ok)
}

// Metric names.
const (
	MetricPullTotal         = "sequence.pull.total"
	MetricExhaustedTotal    = "sequence.exhausted.total"
	MetricOperationTotal    = "sequence.operation.total"
	MetricOperationDuration = "sequence.operation.duration"
)
