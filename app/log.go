package app

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envDebug = "POMO_DEBUG"

	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 28
)

var logWriter io.Closer

// setupLogger sends the default slog logger to a rotating JSON log file at
// path.
func setupLogger(path string) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	level := slog.LevelInfo
	if debugEnabled() {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))

	logWriter = w
}

func closeLogger() {
	if logWriter != nil {
		_ = logWriter.Close()
	}
}

func debugEnabled() bool {
	_, found := os.LookupEnv(envDebug)

	return found
}
