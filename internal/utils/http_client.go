package utils

import (
	"net/http"
	"time"

	"veoprompt-backend/pkg/logger"

	"go.uber.org/zap"
)

// LoggingTransport logs outbound requests and their outcomes. Bodies are not
// logged: generation payloads routinely carry multi-megabyte base64 images.
type LoggingTransport struct {
	Transport http.RoundTripper
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	// Query strings carry API keys, log scheme://host/path only.
	safeURL := req.URL.Scheme + "://" + req.URL.Host + req.URL.Path

	start := time.Now()
	resp, err := transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		logger.Log.Warn("outbound request failed",
			zap.String("method", req.Method),
			zap.String("url", safeURL),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	logger.Log.Debug("outbound request",
		zap.String("method", req.Method),
		zap.String("url", safeURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))
	return resp, nil
}

// NewHTTPClient returns an http.Client that logs each round trip.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &LoggingTransport{Transport: http.DefaultTransport},
	}
}
