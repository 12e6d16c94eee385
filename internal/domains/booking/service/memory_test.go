package service_test

import (
	"context"
	"encoding/json"
	"stay/shared/cache"
	"strings"
	"sync"
)

// memoryCache is a map backed cache.RedisCache. Clear understands trailing "*" globs only.
type memoryCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (m *memoryCache) Save(_ context.Context, key string, value any, _ int) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = data

	return nil
}

func (m *memoryCache) Get(_ context.Context, key string, value any) error {
	m.mu.Lock()
	data, ok := m.values[key]
	m.mu.Unlock()

	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(data, value)
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)

	return nil
}

func (m *memoryCache) Clear(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")

	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			delete(m.values, key)
		}
	}

	return nil
}

func (m *memoryCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.values[key]

	return ok
}
