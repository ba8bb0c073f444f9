package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Scenario runs fn inside a span and, when m is non-nil, records the run as
// an operation. An error returned by fn is recorded on the span and returned
// unchanged.
func Scenario(ctx context.Context, m *Metrics, name string, fn func(context.Context) error) error {
	ctx, span := StartSpan(ctx, SpanScenario)
	defer span.End()
	span.SetAttributes(attribute.String(AttrOperationName, name))

	start := time.Now()
	err := fn(ctx)
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String(AttrStatus, status))

	if m != nil {
		m.RecordOperation(ctx, name, status, time.Since(start))
	}
	return err
}
