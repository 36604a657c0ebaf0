package ports

import (
	"context"

	"github.com/aretw0/numeral/pkg/domain"
)

// Evaluator is the interface used by adapters (HTTP, MCP, runner) to evaluate expressions.
type Evaluator interface {
	// Evaluate computes the expression and renders the result in the input's numeral system.
	Evaluate(ctx context.Context, input string) (domain.Result, error)
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(ctx context.Context, input string) (domain.Result, error)

// Evaluate calls f(ctx, input).
func (f EvaluatorFunc) Evaluate(ctx context.Context, input string) (domain.Result, error) {
	return f(ctx, input)
}
