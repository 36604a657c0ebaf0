package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/numeral/internal/config"
	"github.com/aretw0/numeral/internal/logging"
)

// Options are the flags shared by every command.
type Options struct {
	ConfigPath string
	Debug      bool
}

// SignalError is the cancellation cause of a context stopped by NewSignalContext.
type SignalError struct {
	Signal os.Signal
}

func (e SignalError) Error() string {
	return "received signal " + e.Signal.String()
}

// NewSignalContext returns a context cancelled on SIGINT or SIGTERM, with the
// signal recorded as its cause. stop releases the signal handler.
func NewSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			cancel(SignalError{Signal: sig})
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancel(nil) }
}

// shutdownSignal returns the signal that cancelled ctx, or nil.
func shutdownSignal(ctx context.Context) os.Signal {
	var sigErr SignalError
	if errors.As(context.Cause(ctx), &sigErr) {
		return sigErr.Signal
	}
	return nil
}

// loadConfig reads the configuration and builds the matching logger.
// --debug forces debug level; otherwise the configured level applies.
func loadConfig(opts Options) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, createLogger(cfg.LogLevel, opts.Debug), nil
}

// createLogger configures the application logger.
// It writes to Stderr (to separate from Stdout results).
func createLogger(level string, debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return logging.New(slog.LevelInfo)
	}
	return logging.New(lvl)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
