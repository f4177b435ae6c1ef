package telemetry

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// SurfaceKey separates the versioned API routes from the operational ones.
const SurfaceKey = attribute.Key("wrapper.surface")

// providerLatencyBuckets covers sub-second health checks up to multi-minute assistant polls.
var providerLatencyBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300}

// GatewayMetricAttributes labels gateway request metrics with the matched route and its surface.
func GatewayMetricAttributes(r *http.Request) []attribute.KeyValue {
	route := gatewayRoute(r)
	surface := "ops"
	if _, path, _ := strings.Cut(route, " "); strings.HasPrefix(path, "/v1/") {
		surface = "api"
	}
	return []attribute.KeyValue{
		semconv.HTTPRoute(route),
		SurfaceKey.String(surface),
	}
}

func newMeterProvider(ctx context.Context, res *resource.Resource) (*sdkmetric.MeterProvider, sdkmetric.Exporter, error) {
	exporter, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithInsecure())
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(15*time.Second))),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Name: "*duration*"},
			sdkmetric.Stream{
				Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: providerLatencyBuckets},
			},
		)),
	)
	return mp, exporter, nil
}
