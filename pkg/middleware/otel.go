package middleware

import (
	"context"
	"fmt"

	"github.com/vango-dev/carbon/pkg/action"
	"github.com/vango-dev/carbon/pkg/adapter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for Carbon.
const defaultTracerName = "carbon"

// OTelConfig configures the OpenTelemetry instrumentation.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "carbon").
	TracerName string

	// TracerProvider supplies the tracer.
	// Default: the global provider from otel.GetTracerProvider().
	TracerProvider trace.TracerProvider

	// Context returns the parent context for new spans.
	// Default: context.Background.
	Context func() context.Context

	// Filter determines which renders to trace.
	// If nil, all renders are traced.
	Filter func(info *adapter.RenderInfo) bool
}

// OTelOption configures the OpenTelemetry instrumentation.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithParentContext sets the function supplying parent contexts.
func WithParentContext(fn func() context.Context) OTelOption {
	return func(c *OTelConfig) {
		c.Context = fn
	}
}

// WithRenderFilter sets a filter function for renders.
func WithRenderFilter(filter func(info *adapter.RenderInfo) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
		Context:    context.Background,
	}
}

func (c OTelConfig) tracer() trace.Tracer {
	tp := c.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(c.TracerName)
}

// OpenTelemetry returns adapter middleware creating one span per render.
//
// Spans carry the section and item counts of both trees and, once the
// render completes, its mode and the number of edit operations.
func OpenTelemetry(opts ...OTelOption) adapter.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	tracer := config.tracer()

	return func(info *adapter.RenderInfo, next func() error) error {
		if config.Filter != nil && !config.Filter(info) {
			return next()
		}

		_, span := tracer.Start(config.Context(), "carbon.render",
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(
				attribute.Int("carbon.old.sections", info.Old.Len()),
				attribute.Int("carbon.old.items", info.Old.ItemCount()),
				attribute.Int("carbon.new.sections", info.New.Len()),
				attribute.Int("carbon.new.items", info.New.ItemCount()),
			),
		)
		defer span.End()

		err := next()

		span.SetAttributes(
			attribute.String("carbon.mode", info.Mode.String()),
			attribute.Int("carbon.ops.sections", info.Changes.SectionCount()),
			attribute.Int("carbon.ops.items", info.Changes.ItemCount()),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return err
	}
}

// TraceActions returns an action observer recording one span per
// dispatched action.
func TraceActions(opts ...OTelOption) action.Observer {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	tracer := config.tracer()

	return func(p *action.Payload) {
		_, span := tracer.Start(config.Context(), fmt.Sprintf("carbon.action.%s", p.Kind),
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(
				attribute.String("carbon.action.kind", string(p.Kind)),
				attribute.String("carbon.action.node", p.Node.String()),
				attribute.String("carbon.action.at", p.Coordinate.String()),
			),
		)
		span.End()
	}
}
