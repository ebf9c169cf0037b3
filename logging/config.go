// Package logging configures slog for the extractor: text diagnostics
// on stderr plus, when a log directory is configured, a JSON log file.
// Stdout is reserved for the tool's actual output.
package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const logFileName = "extract-country-mapping.log"

// SetupLogger configures slog handlers for the given directory and
// level. An empty logDir means console only.
func SetupLogger(logDir, level string) *slog.Logger {
	slogLevel := parseLevel(level)

	consoleHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel,
	})

	if logDir == "" {
		return slog.New(consoleHandler)
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		// If we can't create the logs directory, just log to console
		consoleLogger := slog.New(consoleHandler)
		consoleLogger.Error("Failed to create logs directory", "error", err)
		return consoleLogger
	}

	logPath := filepath.Join(logDir, logFileName)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		consoleLogger := slog.New(consoleHandler)
		consoleLogger.Error("Failed to open log file", "path", logPath, "error", err)
		return consoleLogger
	}

	// Console gets text format, file gets JSON format for better parsing
	fileHandler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: slogLevel,
	})

	return slog.New(&multiHandler{
		handlers: []slog.Handler{consoleHandler, fileHandler},
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multiHandler implements slog.Handler to write to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
