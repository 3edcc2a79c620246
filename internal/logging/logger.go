package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global JSON logger. Call before anything logs; the
// audit handler is attached later, once the database is up.
func Setup() {
	slog.SetDefault(slog.New(stdoutHandler()))
}

func stdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// AttachAudit replaces the default logger with a fan-out of the stdout
// handler and the database audit handler.
func AttachAudit(audit *AuditHandler) {
	slog.SetDefault(slog.New(NewMultiHandler(stdoutHandler(), audit)))
}
