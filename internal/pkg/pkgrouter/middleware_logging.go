package pkgrouter

import (
	"bytes"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"
)

// only error bodies are kept for the access log, and only this much of them
const maxLoggedErrorBytes = 4 << 10

//nolint:gochecknoglobals // read-only lookup table
var sensitiveHeaders = map[string]struct{}{
	"authorization":       {},
	"proxy-authorization": {},
	"cookie":              {},
	"set-cookie":          {},
	"x-api-key":           {},
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if _, found := sensitiveHeaders[strings.ToLower(key)]; found {
			result.Set(key, "***")
		}
	}
	return result
}

// statusRecorder tracks what a handler wrote. Bodies are never buffered
// except for JSON error responses.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	bytes   int64
	errBody bytes.Buffer
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if w.status >= http.StatusBadRequest && isJSON(w.Header().Get("Content-Type")) {
		if room := maxLoggedErrorBytes - w.errBody.Len(); room > 0 {
			w.errBody.Write(p[:min(room, len(p))])
		}
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += int64(n)
	return n, err
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func matchedRoutePath(r *http.Request) string {
	if pattern, ok := r.Context().Value(routeKey{}).(string); ok && pattern != "" {
		return pattern
	}
	return r.URL.Path
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}

func isMultipart(contentType string) bool {
	return strings.HasPrefix(mediaType(contentType), "multipart/")
}

func isJSON(contentType string) bool {
	return mediaType(contentType) == "application/json"
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// middlewareLogging writes one line when a request arrives and one when it
// completes. Request bodies are left untouched so uploads stream through.
func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := matchedRoutePath(r)
		start := time.Now()

		slog.InfoContext(
			r.Context(),
			"request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"content_type", mediaType(r.Header.Get("Content-Type")),
			"content_length", r.ContentLength,
			"upload", isMultipart(r.Header.Get("Content-Type")),
			"headers", maskHeaders(r.Header),
		)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		attrs := []any{
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if rec.errBody.Len() > 0 {
			attrs = append(attrs, "error_body", strings.TrimSpace(rec.errBody.String()))
		}

		slog.Log(r.Context(), statusLevel(status), "response sent", attrs...)
	})
}
