package ports_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/numeral/pkg/domain"
	"github.com/aretw0/numeral/pkg/ports"
	"github.com/stretchr/testify/assert"
)

// MockCache is a minimal in-memory ResultCache used to exercise the contract suite itself.
type MockCache struct {
	mu   sync.Mutex
	data map[string]domain.Result
}

func NewMockCache() *MockCache {
	return &MockCache{data: make(map[string]domain.Result)}
}

func (m *MockCache) Get(ctx context.Context, input string) (domain.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.data[input]
	if !ok {
		return domain.Result{}, domain.ErrCacheMiss
	}
	return r, nil
}

func (m *MockCache) Set(ctx context.Context, input string, result domain.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[input] = result
	return nil
}

func (m *MockCache) Delete(ctx context.Context, input string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, input)
	return nil
}

func TestMockCache_Contract(t *testing.T) {
	ports.RunResultCacheContract(t, NewMockCache())
}

func TestEvaluatorFunc(t *testing.T) {
	var ev ports.Evaluator = ports.EvaluatorFunc(func(ctx context.Context, input string) (domain.Result, error) {
		return domain.Result{Input: input, Output: "3", System: domain.SystemArabic, Value: 3}, nil
	})

	res, err := ev.Evaluate(context.Background(), "1 + 2")
	assert.NoError(t, err)
	assert.Equal(t, "3", res.Output)
}
