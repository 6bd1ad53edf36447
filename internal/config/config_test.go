package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty dir and clears env overrides.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(FileEnv, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Web.Addr)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, "", c.Log.File)
	assert.Equal(t, "", c.Trace.Endpoint)
	assert.Equal(t, "spool", c.Trace.ServiceName)
	assert.True(t, c.Trace.Insecure)
	assert.Equal(t, "", c.UI.InitialTopic)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "spool.yaml")
	doc := "web:\n  addr: 127.0.0.1:9000\nlog:\n  level: debug\n  format: json\nui:\n  initial_topic: Sports\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", c.Web.Addr)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "Sports", c.UI.InitialTopic)
}

func TestLoad_FileFromEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "spool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("web:\n  addr: :7000\n"), 0o644))
	t.Setenv(FileEnv, path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", c.Web.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "spool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))
	t.Setenv("SPOOL_LOG_LEVEL", "warn")
	t.Setenv("SPOOL_TRACE_ENDPOINT", "localhost:4318")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "localhost:4318", c.Trace.Endpoint)
}

func TestLoad_OTELEndpointDefault(t *testing.T) {
	isolate(t)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "collector:4318", c.Trace.Endpoint)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_OTELServiceNameDefault(t *testing.T) {
	isolate(t)
	t.Setenv("OTEL_SERVICE_NAME", "spool-staging")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "spool-staging", c.Trace.ServiceName)
}

func TestLoad_TraceInsecure(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "spool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trace:\n  endpoint: collector:4318\n  insecure: false\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "collector:4318", c.Trace.Endpoint)
	assert.False(t, c.Trace.Insecure)

	t.Setenv("SPOOL_TRACE_INSECURE", "true")
	c, err = Load(path)
	require.NoError(t, err)
	assert.True(t, c.Trace.Insecure)
}

func TestLoad_OTELInsecureDefault(t *testing.T) {
	isolate(t)
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "false")

	c, err := Load("")
	require.NoError(t, err)
	assert.False(t, c.Trace.Insecure)
}
