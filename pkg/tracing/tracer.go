package tracing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

//go:generate mockgen -destination=../mocks/mock_tracer.go -package=pkgmocks github.com/salesdesk/salesdesk/pkg/tracing Tracer

// Tracer starts spans around service methods and outbound HTTP calls
type Tracer interface {
	// StartServiceSpan starts a span named "<service>.<method>"
	StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span)

	// EndSpan records err on the span, if any, and ends it
	EndSpan(span *trace.Span, err error)

	// AddAttribute adds an attribute to the span carried by ctx
	AddAttribute(ctx context.Context, key string, value interface{})

	// MarkSpanError marks the span carried by ctx as failed
	MarkSpanError(ctx context.Context, err error)

	// WrapHTTPClient returns a copy of client whose transport is traced
	WrapHTTPClient(client *http.Client) *http.Client
}

type spanTracer struct{}

// NewTracer returns the OpenCensus backed Tracer
func NewTracer() Tracer {
	return spanTracer{}
}

func (spanTracer) StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span) {
	return trace.StartSpan(ctx, fmt.Sprintf("%s.%s", serviceName, methodName))
}

func (spanTracer) EndSpan(span *trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.SetStatus(errorStatus(err))
	}
	span.End()
}

func (spanTracer) AddAttribute(ctx context.Context, key string, value interface{}) {
	span := trace.FromContext(ctx)
	if span == nil {
		return
	}
	span.AddAttributes(attribute(key, value))
}

func (spanTracer) MarkSpanError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if span := trace.FromContext(ctx); span != nil {
		span.SetStatus(errorStatus(err))
	}
}

func (spanTracer) WrapHTTPClient(client *http.Client) *http.Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &http.Client{
		Transport: &ochttp.Transport{
			Base: client.Transport,
			FormatSpanName: func(req *http.Request) string {
				return fmt.Sprintf("%s %s", req.Method, req.URL.Host)
			},
		},
		Timeout:       client.Timeout,
		Jar:           client.Jar,
		CheckRedirect: client.CheckRedirect,
	}
}

func attribute(key string, value interface{}) trace.Attribute {
	switch v := value.(type) {
	case string:
		return trace.StringAttribute(key, v)
	case int:
		return trace.Int64Attribute(key, int64(v))
	case int32:
		return trace.Int64Attribute(key, int64(v))
	case int64:
		return trace.Int64Attribute(key, v)
	case float64:
		return trace.Float64Attribute(key, v)
	case bool:
		return trace.BoolAttribute(key, v)
	default:
		return trace.StringAttribute(key, fmt.Sprintf("%v", v))
	}
}

func errorStatus(err error) trace.Status {
	return trace.Status{Code: trace.StatusCodeUnknown, Message: err.Error()}
}

var globalTracer = NewTracer()

// GetTracer returns the process-wide tracer
func GetTracer() Tracer {
	return globalTracer
}

// SetTracer replaces the process-wide tracer
func SetTracer(tracer Tracer) {
	globalTracer = tracer
}
