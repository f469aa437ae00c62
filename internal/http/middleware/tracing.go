package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

// RequestIDHeader carries the id of a request, generated when the client sends none
const RequestIDHeader = "X-Request-ID"

// TracingMiddleware starts an OpenCensus span per request and records the ochttp server views
func TracingMiddleware(next http.Handler) http.Handler {
	annotated := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := r.Context()
		if span := trace.FromContext(ctx); span != nil {
			span.AddAttributes(
				trace.StringAttribute("http.request_id", requestID),
				trace.StringAttribute("http.user_agent", r.UserAgent()),
			)
			if r.URL.RawQuery != "" {
				span.AddAttributes(trace.StringAttribute("http.query", r.URL.RawQuery))
			}
		}

		next.ServeHTTP(&traceResponseWriter{ResponseWriter: w, span: trace.FromContext(ctx)}, r)
	})

	return &ochttp.Handler{
		Handler: annotated,
		FormatSpanName: func(r *http.Request) string {
			return r.Method + " " + r.URL.Path
		},
		IsPublicEndpoint: true,
	}
}

// traceResponseWriter marks the span failed on 5xx responses
type traceResponseWriter struct {
	http.ResponseWriter
	span       *trace.Span
	statusCode int
}

func (trw *traceResponseWriter) WriteHeader(code int) {
	trw.statusCode = code

	if trw.span != nil && code >= http.StatusInternalServerError {
		trw.span.SetStatus(trace.Status{
			Code:    trace.StatusCodeInternal,
			Message: http.StatusText(code),
		})
	}

	trw.ResponseWriter.WriteHeader(code)
}

var _ http.ResponseWriter = (*traceResponseWriter)(nil)
