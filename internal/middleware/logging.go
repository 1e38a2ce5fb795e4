package middleware

import (
	"go.uber.org/zap"
	"net/http"
	"time"
)

// responseData holds response status and size captured by the wrapper
type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	data *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.data.size += size
	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.data.status = statusCode
}

// Logging logs every request with method, uri, status, size and duration
func Logging(logger *zap.Logger) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			data := &responseData{status: http.StatusOK}
			lw := loggingResponseWriter{
				ResponseWriter: w,
				data:           data,
			}

			next.ServeHTTP(&lw, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
				zap.Int("status", data.status),
				zap.Int("size", data.size),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
