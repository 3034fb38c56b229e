package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger tagged with the service name and hostname,
// shared by everything that logs in this process.
func New(service string) *slog.Logger {
	hostname, _ := os.Hostname()
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(h).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	)
}
