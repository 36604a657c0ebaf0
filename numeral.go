package numeral

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/numeral/internal/logging"
	"github.com/aretw0/numeral/internal/runtime"
	"github.com/aretw0/numeral/pkg/domain"
	"github.com/aretw0/numeral/pkg/ports"
)

// Version is the release version reported by the CLI and the MCP server.
var Version = "0.3.0"

var defaultDispatcher = runtime.NewDispatcher()

// Calc evaluates a two-operand expression written in Arabic or Roman numerals
// and returns the result in the same numeral system.
// It is pure and safe for concurrent use.
func Calc(input string) (string, error) {
	return defaultDispatcher.Evaluate(input)
}

// Calculator is the high-level entry point for the numeral library.
// It wraps the dispatcher with an optional result cache and lifecycle hooks.
type Calculator struct {
	dispatcher   *runtime.Dispatcher
	interpreters []ports.Interpreter
	cache        ports.ResultCache
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
}

// Option defines a functional option for configuring the Calculator.
type Option func(*Calculator)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// WithCache enables result caching.
func WithCache(cache ports.ResultCache) Option {
	return func(c *Calculator) {
		c.cache = cache
	}
}

// WithLifecycleHooks registers observability hooks. Calling it more than once merges the hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Calculator) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithInterpreters overrides the interpreter order (default: Roman, then Arabic).
func WithInterpreters(interpreters ...ports.Interpreter) Option {
	return func(c *Calculator) {
		c.interpreters = interpreters
	}
}

// New creates a Calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if c.logger == nil {
		c.logger = logging.NewNop()
	}

	c.dispatcher = runtime.NewDispatcher(
		runtime.WithLogger(c.logger),
		runtime.WithInterpreters(c.interpreters...),
	)
	return c
}

// Evaluate computes the expression. Cache failures are logged and never fail the evaluation.
func (c *Calculator) Evaluate(ctx context.Context, input string) (domain.Result, error) {
	start := time.Now()
	if c.hooks.OnEvaluate != nil {
		c.hooks.OnEvaluate(ctx, &domain.EvaluationEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventEvaluate},
			Input:     input,
		})
	}

	res, cached, err := c.evaluate(ctx, input)

	if c.hooks.OnEvaluated != nil {
		typ := domain.EventEvaluated
		if cached {
			typ = domain.EventCacheHit
		}
		c.hooks.OnEvaluated(ctx, &domain.EvaluationEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
			Input:     input,
			System:    res.System,
			Output:    res.Output,
			Err:       err,
			Duration:  time.Since(start),
			Cached:    cached,
		})
	}
	return res, err
}

func (c *Calculator) evaluate(ctx context.Context, input string) (domain.Result, bool, error) {
	if c.cache != nil {
		res, err := c.cache.Get(ctx, input)
		switch {
		case err == nil:
			return res, true, nil
		case !errors.Is(err, domain.ErrCacheMiss):
			c.logger.WarnContext(ctx, "cache lookup failed", "input", input, "error", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.Result{}, false, err
	}

	res, err := c.dispatcher.Dispatch(input)
	if err != nil {
		c.logger.DebugContext(ctx, "evaluation failed", "input", input, "error", err)
		return domain.Result{}, false, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, input, res); err != nil {
			c.logger.WarnContext(ctx, "cache store failed", "input", input, "error", err)
		}
	}
	return res, false, nil
}
