package runner

import (
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithHelp sets the text printed for the ":help" command.
func WithHelp(text string) Option {
	return func(r *Runner) {
		r.Help = text
	}
}

// WithStopOnError makes Run return the first evaluation error (batch mode).
func WithStopOnError(stop bool) Option {
	return func(r *Runner) {
		r.StopOnError = stop
	}
}
