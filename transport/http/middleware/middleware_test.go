package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"stay/config"
	"stay/infras/otel/mocks"
	"stay/shared/cache"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	values  map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (m *memoryCache) Save(_ context.Context, key string, value any, _ int) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.values[key] = data

	return nil
}

func (m *memoryCache) Get(_ context.Context, key string, value any) error {
	if m.failGet {
		return errors.New("connection refused")
	}

	data, ok := m.values[key]
	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(data, value)
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	delete(m.values, key)

	return nil
}

func (m *memoryCache) Clear(context.Context, string) error {
	m.values = map[string][]byte{}

	return nil
}

func newLimiter(maxRequests int, counter cache.RedisCache) http.Handler {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := &appMiddleware{otel: mocks.NewOtel(), config: cfg, cache: counter}

	return mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func call(handler http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/guests", nil)
	req.RemoteAddr = "10.0.0.1:5123"
	req.Header.Set("User-Agent", "test")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestRateLimit(t *testing.T) {
	handler := newLimiter(2, newMemoryCache())

	first := call(handler)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", first.Header().Get("X-RateLimit-Window"))

	second := call(handler)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := call(handler)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
}

func TestRateLimitDisabled(t *testing.T) {
	mw := &appMiddleware{otel: mocks.NewOtel(), config: &config.Config{}, cache: newMemoryCache()}

	handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := call(handler)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitCacheFailure(t *testing.T) {
	counter := newMemoryCache()
	counter.failGet = true

	handler := newLimiter(1, counter)

	for range 3 {
		assert.Equal(t, http.StatusOK, call(handler).Code)
	}
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5123"

	assert.Equal(t, "10.0.0.1:unknown", clientKey(req))

	req.Header.Set("X-Real-IP", "192.168.1.9")
	assert.Equal(t, "192.168.1.9:unknown", clientKey(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")
	req.Header.Set("User-Agent", "curl")
	assert.Equal(t, "203.0.113.7:curl", clientKey(req))
}

func TestTracingPassesThrough(t *testing.T) {
	mw := NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	handler := mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := call(handler)

	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	mw := NewAppMiddleware(mocks.NewOtel(), cfg, nil)

	handler := mw.CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guests", nil)
	req.Header.Set("Origin", "https://example.com")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
