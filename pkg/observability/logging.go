package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/numeral/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that log each evaluation at debug level,
// and failures other than invalid input at warn level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluate: func(ctx context.Context, e *domain.EvaluationEvent) {
			logger.DebugContext(ctx, "evaluate", "input", e.Input)
		},
		OnEvaluated: func(ctx context.Context, e *domain.EvaluationEvent) {
			if e.Err != nil {
				level := slog.LevelDebug
				if Outcome(e.Err) == OutcomeError {
					level = slog.LevelWarn
				}
				logger.Log(ctx, level, "evaluation failed", "input", e.Input, "error", e.Err, "duration", e.Duration)
				return
			}
			logger.DebugContext(ctx, "evaluated",
				"input", e.Input,
				"system", e.System,
				"output", e.Output,
				"cached", e.Cached,
				"duration", e.Duration,
			)
		},
	}
}
