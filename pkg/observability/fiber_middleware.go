package observability

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/caresetu/caresetu_backend"

// FiberMiddleware returns a fiber handler that opens a server span per
// request and records basic request metrics.
func FiberMiddleware() fiber.Handler {
	tracer := otel.Tracer(tracerName)
	meter := otel.Meter(tracerName)

	requestCounter, _ := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Number of HTTP requests processed"),
	)
	requestDuration, _ := meter.Float64Histogram(
		"http.server.duration",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)

	return func(c fiber.Ctx) error {
		start := time.Now()

		spanName := c.Method() + " " + c.Path()
		ctx, span := tracer.Start(c.Context(), spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Method()),
				attribute.String("http.target", c.Path()),
				attribute.String("http.client_ip", c.IP()),
			),
		)
		defer span.End()

		c.SetContext(ctx)

		err := c.Next()

		status := c.Response().StatusCode()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if err != nil || status >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
		}

		attrs := metric.WithAttributes(
			attribute.String("method", c.Method()),
			attribute.String("route", c.Route().Path),
			attribute.Int("status", status),
		)
		requestCounter.Add(ctx, 1, attrs)
		requestDuration.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)

		return err
	}
}
