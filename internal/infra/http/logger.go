package http

import (
	"go.uber.org/zap"

	"weather-cli/pkg/log"
)

// maxLoggedBody bounds how much of a response body ends up in a log line.
const maxLoggedBody = 512

// ZapHTTPLogger reports pkg/http traffic through the application logger at debug level.
type ZapHTTPLogger struct{}

func NewZapHTTPLogger() *ZapHTTPLogger {
	return &ZapHTTPLogger{}
}

func (l *ZapHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug("HTTP request",
		zap.String("method", method),
		zap.String("url", url))
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debug("HTTP response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", truncate(responseBody)))
}

func (l *ZapHTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Debug("HTTP request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", truncate(responseBody)),
		zap.Error(err))
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "..."
}
