package cli

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/numeral"
	"github.com/aretw0/numeral/internal/presentation/tui"
	"github.com/aretw0/numeral/pkg/runner"
	"golang.org/x/term"
)

// REPLOptions configures RunREPL.
type REPLOptions struct {
	Options
	JSON bool

	// Input and Output default to Stdin and Stdout.
	Input  io.Reader
	Output io.Writer
}

// RunREPL evaluates expressions line by line until EOF or "exit".
// On a terminal it prints a banner and a prompt; with pipes it stays silent.
func RunREPL(ctx context.Context, opts REPLOptions) (runner.Stats, error) {
	cfg, logger, err := loadConfig(opts.Options)
	if err != nil {
		return runner.Stats{}, err
	}

	calc, closer, err := createCalculator(ctx, cfg, logger, nil)
	if err != nil {
		return runner.Stats{}, err
	}
	defer closer()

	in, out := opts.Input, opts.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(in, out)
	} else if isTerminal(in) {
		tui.PrintBanner(out, numeral.Version)
		printSystemMessage(out, "Type :help for syntax, exit to quit.")
		handler = runner.NewTextHandler(in, out,
			runner.WithPrompt("> "),
			runner.WithTextHandlerRenderer(tui.NewRenderer()),
		)
	} else {
		handler = runner.NewTextHandler(in, out)
	}

	r := runner.NewRunner(calc,
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
	)
	stats, err := r.Run(ctx)
	if sig := shutdownSignal(ctx); sig != nil {
		// Ctrl-C ends an interactive session like "exit" does.
		logger.Debug("REPL interrupted", "signal", sig)
		err = nil
	}
	logger.Debug("REPL finished", "evaluated", stats.Evaluated, "failed", stats.Failed)
	return stats, err
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
