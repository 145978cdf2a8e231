package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger installs the default slog logger. When logFile is non-empty,
// every record is also appended there without ANSI color codes.
func InitLogger(logFile string) {
	w := io.Writer(os.Stdout)
	noColor := false

	var openErr error
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			openErr = err
		} else {
			w = io.MultiWriter(os.Stdout, f)
			noColor = true
		}
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    noColor,
	})

	slog.SetDefault(slog.New(handler))

	if openErr != nil {
		slog.Warn("[Logging] Could not open log file, logging to stdout only",
			slog.String("file", logFile),
			slog.String("error", openErr.Error()))
	}
}
