package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
)

// RequestLogger logs one line per request at level. Successful /metrics
// scrapes are only logged once a minute.
func RequestLogger(service string, level slog.Level, json bool) func(http.Handler) http.Handler {
	logger := httplog.NewLogger(service, httplog.Options{
		LogLevel:         level,
		JSON:             json,
		Concise:          true,
		MessageFieldName: "msg",
		TimeFieldFormat:  time.RFC3339,
		QuietDownRoutes:  []string{"/metrics"},
		QuietDownPeriod:  time.Minute,
		Tags: map[string]string{
			"service": service,
		},
	})

	return httplog.RequestLogger(logger)
}
