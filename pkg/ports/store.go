package ports

import (
	"context"

	"github.com/aretw0/numeral/pkg/domain"
)

// ResultCache stores previously computed results keyed by the raw input.
// Evaluation is deterministic, so entries never go stale; backends may still expire them.
type ResultCache interface {
	// Get returns the cached result for input.
	// Returns domain.ErrCacheMiss if there is no entry.
	Get(ctx context.Context, input string) (domain.Result, error)

	// Set stores a result for input.
	Set(ctx context.Context, input string, result domain.Result) error

	// Delete removes the entry for input. Deleting a missing entry is not an error.
	Delete(ctx context.Context, input string) error
}
