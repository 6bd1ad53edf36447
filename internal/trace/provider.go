// Package trace sets up the OpenTelemetry tracer used across Spool.
package trace

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer handed out by Provider.
const InstrumentationName = "spool"

// Config selects where spans go. An empty Endpoint keeps spans in-process.
type Config struct {
	Endpoint    string
	ServiceName string
	// Insecure applies to host:port endpoints only; a URL's scheme decides
	// for itself.
	Insecure bool
}

// Provider owns the SDK tracer provider and its exporter.
type Provider struct {
	provider  *sdktrace.TracerProvider
	tracer    oteltrace.Tracer
	exporting bool
}

// NewProvider builds a tracer provider. When cfg.Endpoint is set spans are
// batched to an OTLP/HTTP collector; extra SDK options (span processors in
// tests) are appended.
func NewProvider(ctx context.Context, cfg Config, opts ...sdktrace.TracerProviderOption) (*Provider, error) {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "spool"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	all := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	exporting := false
	if cfg.Endpoint != "" {
		// OTEL_EXPORTER_OTLP_ENDPOINT carries a URL; config files usually a host:port.
		var exOpts []otlptracehttp.Option
		switch {
		case strings.Contains(cfg.Endpoint, "://"):
			exOpts = append(exOpts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		case cfg.Insecure:
			exOpts = append(exOpts, otlptracehttp.WithEndpoint(cfg.Endpoint), otlptracehttp.WithInsecure())
		default:
			exOpts = append(exOpts, otlptracehttp.WithEndpoint(cfg.Endpoint))
		}
		exporter, err := otlptracehttp.New(ctx, exOpts...)
		if err != nil {
			return nil, err
		}
		all = append(all, sdktrace.WithBatcher(exporter))
		exporting = true
	}
	all = append(all, opts...)

	provider := sdktrace.NewTracerProvider(all...)
	return &Provider{
		provider:  provider,
		tracer:    provider.Tracer(InstrumentationName),
		exporting: exporting,
	}, nil
}

// Tracer returns the Spool tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	return p.tracer
}

// Exporting reports whether spans leave the process.
func (p *Provider) Exporting() bool {
	return p.exporting
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Attr namespaces an attribute under spool.*.
func Attr(key, value string) attribute.KeyValue {
	switch key {
	case "topic":
		key = "spool.topic.name"
	case "from":
		key = "spool.topic.previous"
	case "surface":
		key = "spool.surface"
	default:
		key = "spool." + key
	}
	return attribute.String(key, value)
}

// IntAttr namespaces an integer attribute under spool.*.
func IntAttr(key string, value int) attribute.KeyValue {
	return attribute.Int("spool."+key, value)
}
