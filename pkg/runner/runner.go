package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/numeral/internal/logging"
	"github.com/aretw0/numeral/pkg/ports"
)

// DefaultHelp is printed for ":help" when no WithHelp option is given.
const DefaultHelp = `# numeral

Enter one expression per line: two operands and one operator.

- Arabic: ` + "`12 * 3`" + `
- Roman: ` + "`XII * III`" + `
- Operators: ` + "`+ - * /`" + `

Type ` + "`exit`" + ` to leave.`

// Stats summarizes one Run.
type Stats struct {
	Evaluated int
	Failed    int
}

// Runner handles the evaluation loop using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	Evaluator ports.Evaluator

	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Help is printed for ":help".
	Help string

	// StopOnError makes Run return on the first failed evaluation.
	StopOnError bool
}

// NewRunner creates a Runner for the given evaluator.
func NewRunner(evaluator ports.Evaluator, opts ...Option) *Runner {
	r := &Runner{
		Evaluator: evaluator,
		Help:      DefaultHelp,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run reads and evaluates lines until EOF, an exit command or context cancellation.
// EOF and exit commands end the loop without error. Evaluation failures are
// reported through the handler and counted; they only end the loop with StopOnError.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	if c, ok := r.Handler.(io.Closer); ok {
		defer c.Close()
	}

	var stats Stats
	for {
		raw, err := r.Handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			return stats, err
		}

		line, err := SanitizeInput(raw)
		if err != nil {
			stats.Failed++
			if herr := r.Handler.Failure(ctx, "", err); herr != nil {
				return stats, herr
			}
			if r.StopOnError {
				return stats, err
			}
			continue
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return stats, nil
		case ":help", "help":
			if err := r.Handler.SystemOutput(ctx, r.Help); err != nil {
				return stats, err
			}
			continue
		}

		res, err := r.Evaluator.Evaluate(ctx, line)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.Failed++
			r.Logger.Debug("line failed", "input", line, "error", err)
			if herr := r.Handler.Failure(ctx, line, err); herr != nil {
				return stats, herr
			}
			if r.StopOnError {
				return stats, fmt.Errorf("line %d: %w", stats.Evaluated+stats.Failed, err)
			}
			continue
		}

		stats.Evaluated++
		if err := r.Handler.Result(ctx, res); err != nil {
			return stats, err
		}
	}
}
