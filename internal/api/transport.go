package api

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport wraps an http.RoundTripper to log each backend call.
//
// This is the client-side mirror of server request-logging middleware: the
// decorator pattern again, just wrapping RoundTrip instead of ServeHTTP.
// Every call logs method, path, status, and duration — enough to spot a
// slow backend from the client logs alone.
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *slog.Logger) *loggingTransport {
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	res, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Error("backend call failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	t.logger.Debug("backend call completed",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", req.Header.Get("X-Request-ID")),
	)
	return res, nil
}
