package telemetry

import (
	"context"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys attached to provider calls.
const (
	OperationKey = attribute.Key("wrapper.operation")
	TaskIDKey    = attribute.Key("wrapper.task_id")
	AttemptsKey  = attribute.Key("wrapper.attempts")
	SkippedKey   = attribute.Key("wrapper.skipped")
)

// unmatchedRoute names requests that no gateway route accepted.
// Raw paths are never used as span names or metric attributes.
const unmatchedRoute = "unmatched"

var (
	tracer = otel.Tracer("")
)

// Start a new span named after the calling function.
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, getCallerName(2), opts...)
}

// WithOperation tags a span with the provider operation and, when known, the task id.
func WithOperation(operation, taskID string) trace.SpanStartOption {
	attrs := []attribute.KeyValue{OperationKey.String(operation)}
	if taskID != "" {
		attrs = append(attrs, TaskIDKey.String(taskID))
	}
	return trace.WithAttributes(attrs...)
}

// RecordErrorAndStatus records an error in the span and sets the status to Error.
// Returns true if an error was recorded, false otherwise.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return true
	}
	span.SetStatus(codes.Ok, "OK")
	return false
}

// Middleware instruments the gateway handlers under the given service operation.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(GatewaySpanName),
		otelhttp.WithMetricAttributesFn(GatewayMetricAttributes),
	)
}

// GatewaySpanName names a gateway span after the matched route pattern.
func GatewaySpanName(_ string, r *http.Request) string {
	return gatewayRoute(r)
}

func gatewayRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return r.Method + " " + unmatchedRoute
}

// ClientSpanName names an outbound provider call after its method and path,
// with object ids such as thread_abc or run_abc collapsed to {id}.
func ClientSpanName(_ string, r *http.Request) string {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	for i, seg := range segments {
		if strings.Contains(seg, "_") {
			segments[i] = "{id}"
		}
	}
	return r.Method + " /" + strings.Join(segments, "/")
}

func getCallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	parts := strings.Split(fn.Name(), "/")

	return strings.ReplaceAll(parts[len(parts)-1], ".", "::")
}

// newTracerProvider exports spans over OTLP/HTTP in batches.
// Spans follow the sampling decision of an incoming parent when there is one.
func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
	)
	return tp, exporter, nil
}
