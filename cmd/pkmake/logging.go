// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/pkmake/pkmake/internal/config"
)

// installLogger makes a charmbracelet/log logger writing to w the slog default.
func installLogger(w io.Writer, level config.LogLevel) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "pk-make",
		// charmbracelet/log levels share slog's numeric values
		Level: log.Level(level.SlogLevel()),
	})
	slog.SetDefault(slog.New(logger))
	return logger
}
