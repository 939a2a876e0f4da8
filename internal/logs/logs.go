package logs

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

var level = new(slog.LevelVar)

// Init installs the tinted console handler as the default slog logger.
func Init(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

// ConsoleLogger returns a tinted logger writing to stderr.
func ConsoleLogger() *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
