package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/questx-lab/raffle/pkg/xredis"
)

// MockRedisClient keeps values in memory. Each function can be overridden.
type MockRedisClient struct {
	ExistFunc func(ctx context.Context, key string) (bool, error)
	DelFunc   func(ctx context.Context, key ...string) error
	SetFunc   func(ctx context.Context, key, value string, ttl time.Duration) error
	GetFunc   func(ctx context.Context, key string) (string, error)

	mu     sync.Mutex
	values map[string]string
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if m.ExistFunc != nil {
		return m.ExistFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key ...string) error {
	if m.DelFunc != nil {
		return m.DelFunc(ctx, key...)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range key {
		delete(m.values, k)
	}
	return nil
}

func (m *MockRedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", xredis.ErrNotFound
	}
	return value, nil
}
