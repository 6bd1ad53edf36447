package telemetry

import (
	"context"
	"log/slog"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"spool/internal/browser"
	"spool/internal/trace"
)

// Surface names the front-end a recorder reports for.
const (
	SurfaceTerminal = "terminal"
	SurfaceWeb      = "web"
	SurfaceExport   = "export"
)

// Recorder reports topic selections and page renders to logs, metrics and traces.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	logger  *slog.Logger
	tracer  oteltrace.Tracer
	surface string
}

// NewRecorder creates a recorder. A nil tracer disables spans.
func NewRecorder(logger *slog.Logger, tracer oteltrace.Tracer, surface string) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(trace.InstrumentationName)
	}
	return &Recorder{
		logger:  logger.With(slog.String("surface", surface)),
		tracer:  tracer,
		surface: surface,
	}
}

// Logger returns the recorder's logger.
func (r *Recorder) Logger() *slog.Logger {
	if r == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.logger
}

// TopicSelected records a selection change.
func (r *Recorder) TopicSelected(ctx context.Context, from, to string) {
	if r == nil {
		return
	}
	ctx, span := r.tracer.Start(ctx, "topic.select", oteltrace.WithAttributes(
		trace.Attr("surface", r.surface),
		trace.Attr("from", from),
		trace.Attr("topic", to),
	))
	defer span.End()

	metricSelections.WithLabelValues(r.surface, to).Inc()
	WithContext(ctx, r.logger).Info("topic selected", slog.String("from", from), slog.String("to", to))
}

// TopicViewed records a page served for topic without a prior selection,
// such as a web request or an exported file.
func (r *Recorder) TopicViewed(ctx context.Context, topic string) {
	if r == nil {
		return
	}
	ctx, span := r.tracer.Start(ctx, "topic.view", oteltrace.WithAttributes(
		trace.Attr("surface", r.surface),
		trace.Attr("topic", topic),
	))
	defer span.End()

	metricViews.WithLabelValues(r.surface, topic).Inc()
	WithContext(ctx, r.logger).Debug("topic viewed", slog.String("topic", topic))
}

// Observer adapts the recorder to a browser observer bound to ctx.
func (r *Recorder) Observer(ctx context.Context) browser.Observer {
	return func(from, to string) {
		r.TopicSelected(ctx, from, to)
	}
}

// StartRender opens a render span for topic. The returned func closes it and
// records the number of cards drawn.
func (r *Recorder) StartRender(ctx context.Context, topic string) (context.Context, func(cards int)) {
	if r == nil {
		return ctx, func(int) {}
	}
	ctx, span := r.tracer.Start(ctx, "page.render", oteltrace.WithAttributes(
		trace.Attr("surface", r.surface),
		trace.Attr("topic", topic),
	))
	return ctx, func(cards int) {
		span.SetAttributes(trace.IntAttr("cards", cards))
		span.End()
		metricRenders.WithLabelValues(r.surface).Inc()
		WithContext(ctx, r.logger).Debug("page rendered", slog.String("topic", topic), slog.Int("cards", cards))
	}
}
