package observability_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/aretw0/numeral"
	"github.com/aretw0/numeral/pkg/domain"
	"github.com/aretw0/numeral/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	calc := numeral.New(numeral.WithLifecycleHooks(metrics.Hooks()))
	ctx := context.Background()

	_, _ = calc.Evaluate(ctx, "1 + 2")
	_, _ = calc.Evaluate(ctx, "II + II")
	_, _ = calc.Evaluate(ctx, "I - V")
	_, _ = calc.Evaluate(ctx, "1 / 0")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Evaluations.WithLabelValues("arabic", observability.OutcomeOK, "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Evaluations.WithLabelValues("roman", observability.OutcomeOK, "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Evaluations.WithLabelValues("none", observability.OutcomeInvalid, "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Evaluations.WithLabelValues("none", observability.OutcomeDivByZero, "false")))
	assert.Equal(t, 3, testutil.CollectAndCount(metrics.Duration))
}

func TestOutcome(t *testing.T) {
	tests := map[string]error{
		observability.OutcomeOK:              nil,
		observability.OutcomeInvalid:         fmt.Errorf("wrap: %w", domain.ErrInvalidExpression),
		observability.OutcomeDivByZero:       domain.ErrDivisionByZero,
		observability.OutcomeUnrepresentable: domain.ErrNotRepresentable,
		observability.OutcomeError:           errors.New("redis down"),
	}
	for want, err := range tests {
		assert.Equal(t, want, observability.Outcome(err))
	}
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	calc := numeral.New(numeral.WithLifecycleHooks(observability.LoggingHooks(logger)))

	_, _ = calc.Evaluate(context.Background(), "X + I")
	_, _ = calc.Evaluate(context.Background(), "X +")

	out := buf.String()
	assert.Contains(t, out, "output=XI")
	assert.Contains(t, out, "system=roman")
	assert.Contains(t, out, "evaluation failed")
}
