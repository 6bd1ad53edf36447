package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"spool/internal/browser"
	"spool/internal/catalog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info", "json", "web")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", slog.String("k", "v"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "web", rec["component"])
	assert.Equal(t, "v", rec["k"])
}

func TestNewLogger_BadInput(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "info", "xml", "web")
	assert.Error(t, err)
	_, err = NewLogger(&bytes.Buffer{}, "loud", "text", "web")
	assert.Error(t, err)
}

func TestOpenLogFile_CreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "spool.log")
	f, err := OpenLogFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	_, err = f.WriteString("line\n")
	assert.NoError(t, err)
}

func newTestRecorder(t *testing.T, surface string) (*Recorder, *tracetest.SpanRecorder, *bytes.Buffer) {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", "json", "test")
	require.NoError(t, err)
	return NewRecorder(logger, tp.Tracer("test"), surface), spans, &buf
}

func TestRecorder_TopicSelected(t *testing.T) {
	r, spans, buf := newTestRecorder(t, "unit-select")
	before := testutil.ToFloat64(metricSelections.WithLabelValues("unit-select", "Health"))

	b := browser.New(catalog.Default(), browser.WithObserver(r.Observer(context.Background())))
	_, err := b.Select("Health")
	require.NoError(t, err)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "topic.select", ended[0].Name())

	after := testutil.ToFloat64(metricSelections.WithLabelValues("unit-select", "Health"))
	assert.Equal(t, before+1, after)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "topic selected", rec["msg"])
	assert.Equal(t, "Technology", rec["from"])
	assert.Equal(t, "Health", rec["to"])
	assert.Equal(t, "unit-select", rec["surface"])
	assert.NotEmpty(t, rec["trace_id"])
}

func TestRecorder_TopicViewed(t *testing.T) {
	r, spans, buf := newTestRecorder(t, "unit-view")
	before := testutil.ToFloat64(metricViews.WithLabelValues("unit-view", "Technology"))
	selections := testutil.ToFloat64(metricSelections.WithLabelValues("unit-view", "Technology"))

	r.TopicViewed(context.Background(), "Technology")

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "topic.view", ended[0].Name())
	assert.Equal(t, before+1, testutil.ToFloat64(metricViews.WithLabelValues("unit-view", "Technology")))
	assert.Equal(t, selections, testutil.ToFloat64(metricSelections.WithLabelValues("unit-view", "Technology")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "topic viewed", rec["msg"])
	assert.Equal(t, "Technology", rec["topic"])
}

func TestRecorder_StartRender(t *testing.T) {
	r, spans, _ := newTestRecorder(t, "unit-render")
	before := testutil.ToFloat64(metricRenders.WithLabelValues("unit-render"))

	_, done := r.StartRender(context.Background(), "Sports")
	assert.Empty(t, spans.Ended())
	done(9)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "page.render", ended[0].Name())
	assert.Equal(t, before+1, testutil.ToFloat64(metricRenders.WithLabelValues("unit-render")))
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *Recorder
	r.TopicSelected(context.Background(), "a", "b")
	r.TopicViewed(context.Background(), "a")
	_, done := r.StartRender(context.Background(), "a")
	done(0)
	r.Logger().Info("discarded")
}

func TestRecorder_DefaultsWithoutTracer(t *testing.T) {
	r := NewRecorder(nil, nil, "unit-noop")
	r.TopicSelected(context.Background(), "Technology", "Sports")
	_, done := r.StartRender(context.Background(), "Sports")
	done(9)
}
