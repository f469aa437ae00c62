package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/config"
)

func TestInit_Disabled(t *testing.T) {
	exporters, err := Init(&config.TracingConfig{Enabled: false, TraceExporter: "jaeger"})
	require.NoError(t, err)
	assert.Nil(t, exporters.MetricsHandler())
	assert.NotPanics(t, exporters.Flush)
}

func TestInit_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TracingConfig
		want string
	}{
		{
			name: "unknown trace exporter",
			cfg:  config.TracingConfig{Enabled: true, TraceExporter: "honeycomb"},
			want: "unsupported trace exporter: honeycomb",
		},
		{
			name: "stackdriver without project",
			cfg:  config.TracingConfig{Enabled: true, TraceExporter: "stackdriver"},
			want: "stackdriver project id is required",
		},
		{
			name: "datadog without agent",
			cfg:  config.TracingConfig{Enabled: true, TraceExporter: "datadog"},
			want: "datadog agent address is required",
		},
		{
			name: "xray without region",
			cfg:  config.TracingConfig{Enabled: true, TraceExporter: "xray"},
			want: "aws region is required",
		},
		{
			name: "stackdriver metrics without project",
			cfg:  config.TracingConfig{Enabled: true, TraceExporter: "none", MetricsExporter: "stackdriver"},
			want: "stackdriver project id is required",
		},
		{
			name: "jaeger without endpoint",
			cfg:  config.TracingConfig{Enabled: true, TraceExporter: "jaeger"},
			want: "jaeger endpoint is required",
		},
		{
			name: "zipkin without endpoint",
			cfg:  config.TracingConfig{Enabled: true, TraceExporter: "zipkin"},
			want: "zipkin endpoint is required",
		},
		{
			name: "unknown metrics exporter",
			cfg:  config.TracingConfig{Enabled: true, TraceExporter: "none", MetricsExporter: "statsd"},
			want: "unsupported metrics exporter: statsd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Init(&tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestInit_ZipkinOnly(t *testing.T) {
	exporters, err := Init(&config.TracingConfig{
		Enabled:             true,
		ServiceName:         "salesdesk-api",
		SamplingProbability: 1,
		TraceExporter:       "zipkin",
		ZipkinEndpoint:      "http://localhost:9411/api/v2/spans",
		MetricsExporter:     "none",
	})
	require.NoError(t, err)
	assert.Nil(t, exporters.MetricsHandler())
}

func TestMetricsNamespace(t *testing.T) {
	assert.Equal(t, "salesdesk_api", metricsNamespace("salesdesk-api"))
	assert.Equal(t, "svc_1", metricsNamespace("svc.1"))
}

func TestExporters_NilSafe(t *testing.T) {
	var exporters *Exporters
	assert.Nil(t, exporters.MetricsHandler())
	assert.NotPanics(t, exporters.Flush)
}
