// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options controls logger construction.
type Options struct {
	Verbose bool      // debug level instead of info
	Stderr  io.Writer // text sink; os.Stderr when nil
	LogFile string    // optional JSON sink appended to this path
}

// Setup builds a logger from opts and installs it as slog's default.
// The returned close func releases the log file, if one was opened.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	handler := slog.Handler(slog.NewTextHandler(stderr, handlerOpts))
	closeFn := func() error { return nil }

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handler = slogmulti.Fanout(handler, slog.NewJSONHandler(f, handlerOpts))
		closeFn = f.Close
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
