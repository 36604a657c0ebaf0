package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEvaluate  EventType = "evaluate"
	EventCacheHit  EventType = "cache_hit"
	EventEvaluated EventType = "evaluated"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// EvaluationEvent describes one evaluation, before or after it ran.
type EvaluationEvent struct {
	EventBase
	Input    string        `json:"input"`
	System   System        `json:"system,omitempty"`
	Output   string        `json:"output,omitempty"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration,omitempty"`
	Cached   bool          `json:"cached,omitempty"`
}

// LifecycleHooks defines callbacks for calculator observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnEvaluate  func(context.Context, *EvaluationEvent)
	OnEvaluated func(context.Context, *EvaluationEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnEvaluate:  chain(h.OnEvaluate, other.OnEvaluate),
		OnEvaluated: chain(h.OnEvaluated, other.OnEvaluated),
	}
}

func chain(a, b func(context.Context, *EvaluationEvent)) func(context.Context, *EvaluationEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *EvaluationEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
