package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/numeral/internal/logging"
	"github.com/aretw0/numeral/pkg/domain"
	"github.com/aretw0/numeral/pkg/numeral"
	"github.com/aretw0/numeral/pkg/ports"
)

// Dispatcher tries each interpreter in a fixed order and evaluates the input
// with the first one that both parses and validates it.
type Dispatcher struct {
	interpreters []ports.Interpreter
	logger       *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for per-interpreter debug traces.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithInterpreters replaces the default interpreter order.
func WithInterpreters(interpreters ...ports.Interpreter) DispatcherOption {
	return func(d *Dispatcher) {
		if len(interpreters) > 0 {
			d.interpreters = interpreters
		}
	}
}

// DefaultInterpreters returns the standard order: Roman first, then Arabic.
// The symbol sets are disjoint, so the order only has to be fixed, not meaningful.
func DefaultInterpreters() []ports.Interpreter {
	return []ports.Interpreter{numeral.NewRoman(), numeral.NewArabic()}
}

// NewDispatcher creates a dispatcher with the default interpreters.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		interpreters: DefaultInterpreters(),
		logger:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch evaluates input and returns the result rendered in the input's numeral system.
// It fails with domain.ErrInvalidExpression when no interpreter accepts the input,
// and with the evaluation or formatting error of the accepting interpreter otherwise.
func (d *Dispatcher) Dispatch(input string) (domain.Result, error) {
	for _, in := range d.interpreters {
		expr, ok := in.Parse(input)
		if !ok {
			continue
		}
		if !in.IsValid(expr) {
			d.logger.Debug("expression rejected by interpreter", "system", in.System(), "expr", expr.String())
			continue
		}

		value, err := expr.Apply()
		if err != nil {
			return domain.Result{}, fmt.Errorf("evaluate %q: %w", input, err)
		}
		out, err := in.Format(value)
		if err != nil {
			return domain.Result{}, fmt.Errorf("format %q: %w", input, err)
		}
		return domain.Result{
			Input:  input,
			Output: out,
			System: in.System(),
			Value:  value,
		}, nil
	}
	return domain.Result{}, fmt.Errorf("%w: %q", domain.ErrInvalidExpression, input)
}

// Evaluate is Dispatch reduced to the output string.
func (d *Dispatcher) Evaluate(input string) (string, error) {
	res, err := d.Dispatch(input)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}
