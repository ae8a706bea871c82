package logging

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/zombar/textscore/pkg/tracing"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	status       int
	bytesWritten int64
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

// HTTPLoggingMiddleware logs HTTP requests in structured JSON format.
// Scrape and health requests are logged at debug level.
func HTTPLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			level := slog.LevelInfo
			if r.URL.Path == "/metrics" || r.URL.Path == "/health" {
				level = slog.LevelDebug
			}
			logger.LogAttrs(r.Context(), level, "http_request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", wrapped.status),
				slog.Int64("bytes", wrapped.bytesWritten),
				slog.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.UserAgent()),
				slog.String("trace_id", tracing.TraceIDFromContext(r.Context())),
				slog.String("span_id", tracing.SpanIDFromContext(r.Context())),
			)
		})
	}
}

// HTTPErrorLogger logs HTTP errors in structured format
func HTTPErrorLogger(logger *slog.Logger, statusCode int, err error, r *http.Request) {
	logger.LogAttrs(r.Context(), slog.LevelError, "http_error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", statusCode),
		slog.String("error", err.Error()),
		slog.String("trace_id", tracing.TraceIDFromContext(r.Context())),
		slog.String("span_id", tracing.SpanIDFromContext(r.Context())),
	)
}
