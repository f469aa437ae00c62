package tracing

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	openzipkin "github.com/openzipkin/zipkin-go"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/salesdesk/salesdesk/config"
)

// Exporters holds what Init registered so it can be flushed on shutdown
type Exporters struct {
	jaeger      *jaeger.Exporter
	stackdriver *stackdriver.Exporter
	datadog     *datadog.Exporter
	metrics     *prometheus.Exporter
}

// MetricsHandler serves the Prometheus scrape endpoint, or nil when metrics are off
func (e *Exporters) MetricsHandler() http.Handler {
	if e == nil || e.metrics == nil {
		return nil
	}
	return e.metrics
}

// Flush sends buffered spans and stops the exporters that keep a connection open
func (e *Exporters) Flush() {
	if e == nil {
		return
	}
	if e.jaeger != nil {
		e.jaeger.Flush()
	}
	if e.stackdriver != nil {
		e.stackdriver.Flush()
	}
	if e.datadog != nil {
		e.datadog.Stop()
	}
}

// Init configures sampling and registers the trace and metrics exporters named in cfg
func Init(cfg *config.TracingConfig) (*Exporters, error) {
	exporters := &Exporters{}
	if !cfg.Enabled {
		return exporters, nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(cfg.SamplingProbability),
	})

	switch cfg.TraceExporter {
	case "jaeger":
		if cfg.JaegerEndpoint == "" {
			return nil, fmt.Errorf("jaeger endpoint is required for the jaeger exporter")
		}
		je, err := jaeger.NewExporter(jaeger.Options{
			CollectorEndpoint: cfg.JaegerEndpoint,
			Process:           jaeger.Process{ServiceName: cfg.ServiceName},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create jaeger exporter: %w", err)
		}
		trace.RegisterExporter(je)
		exporters.jaeger = je
	case "zipkin":
		if cfg.ZipkinEndpoint == "" {
			return nil, fmt.Errorf("zipkin endpoint is required for the zipkin exporter")
		}
		endpoint, err := openzipkin.NewEndpoint(cfg.ServiceName, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create zipkin endpoint: %w", err)
		}
		trace.RegisterExporter(zipkin.NewExporter(zipkinhttp.NewReporter(cfg.ZipkinEndpoint), endpoint))
	case "stackdriver":
		se, err := exporters.stackdriverExporter(cfg)
		if err != nil {
			return nil, err
		}
		trace.RegisterExporter(se)
	case "datadog":
		de, err := exporters.datadogExporter(cfg)
		if err != nil {
			return nil, err
		}
		trace.RegisterExporter(de)
	case "xray":
		if cfg.XRayRegion == "" {
			return nil, fmt.Errorf("aws region is required for the xray exporter")
		}
		xe, err := aws.NewExporter(aws.WithRegion(cfg.XRayRegion), aws.WithVersion("latest"))
		if err != nil {
			return nil, fmt.Errorf("failed to create xray exporter: %w", err)
		}
		trace.RegisterExporter(xe)
	case "none", "":
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	for _, name := range strings.Split(cfg.MetricsExporter, ",") {
		switch strings.TrimSpace(name) {
		case "prometheus":
			pe, err := prometheus.NewExporter(prometheus.Options{
				Namespace: metricsNamespace(cfg.ServiceName),
				OnError: func(err error) {
					log.Printf("Prometheus exporter error: %v", err)
				},
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
			}
			view.RegisterExporter(pe)
			exporters.metrics = pe
		case "stackdriver":
			se, err := exporters.stackdriverExporter(cfg)
			if err != nil {
				return nil, err
			}
			view.RegisterExporter(se)
		case "datadog":
			de, err := exporters.datadogExporter(cfg)
			if err != nil {
				return nil, err
			}
			view.RegisterExporter(de)
		case "none", "":
		default:
			return nil, fmt.Errorf("unsupported metrics exporter: %s", name)
		}
	}

	if err := RegisterViews(); err != nil {
		return nil, err
	}

	log.Printf("OpenCensus initialized with trace exporter: %s, metrics exporter: %s",
		cfg.TraceExporter, cfg.MetricsExporter)
	return exporters, nil
}

// stackdriver and datadog exporters serve traces and metrics, so one instance is shared
func (e *Exporters) stackdriverExporter(cfg *config.TracingConfig) (*stackdriver.Exporter, error) {
	if e.stackdriver != nil {
		return e.stackdriver, nil
	}
	if cfg.StackdriverProjectID == "" {
		return nil, fmt.Errorf("stackdriver project id is required for the stackdriver exporter")
	}
	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
		OnError: func(err error) {
			log.Printf("Stackdriver exporter error: %v", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stackdriver exporter: %w", err)
	}
	e.stackdriver = se
	return se, nil
}

func (e *Exporters) datadogExporter(cfg *config.TracingConfig) (*datadog.Exporter, error) {
	if e.datadog != nil {
		return e.datadog, nil
	}
	if cfg.DatadogAgentAddress == "" {
		return nil, fmt.Errorf("datadog agent address is required for the datadog exporter")
	}
	options := datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: cfg.DatadogAgentAddress,
		StatsAddr: cfg.DatadogAgentAddress,
		OnError: func(err error) {
			log.Printf("Datadog exporter error: %v", err)
		},
	}
	if cfg.DatadogAPIKey != "" {
		options.GlobalTags = map[string]interface{}{"api_key": cfg.DatadogAPIKey}
	}
	de, err := datadog.NewExporter(options)
	if err != nil {
		return nil, fmt.Errorf("failed to create datadog exporter: %w", err)
	}
	e.datadog = de
	return de, nil
}

// RegisterViews registers the HTTP server and database views
func RegisterViews() error {
	if err := view.Register(ochttp.DefaultServerViews...); err != nil {
		return fmt.Errorf("failed to register HTTP server views: %w", err)
	}
	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return fmt.Errorf("failed to register database views: %w", err)
	}
	return nil
}

// WrapSQLDriver registers a traced copy of driverName and returns its name
func WrapSQLDriver(driverName string) (string, error) {
	return ocsql.Register(driverName, ocsql.WithAllTraceOptions())
}

// prometheus namespaces may only contain [a-zA-Z0-9_]
func metricsNamespace(serviceName string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, serviceName)
}
