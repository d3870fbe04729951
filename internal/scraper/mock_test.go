package scraper

import (
	"context"
	"time"
)

// MockCacheService implements a simple in-memory cache for testing
type MockCacheService struct {
	cache map[string][]byte
}

func NewMockCacheService() *MockCacheService {
	return &MockCacheService{
		cache: make(map[string][]byte),
	}
}

func (m *MockCacheService) Get(key string) ([]byte, error) {
	if val, ok := m.cache[key]; ok {
		return val, nil
	}
	return nil, &mockError{message: "cache miss"}
}

func (m *MockCacheService) Set(key string, value []byte, expiration time.Duration) error {
	m.cache[key] = value
	return nil
}

func (m *MockCacheService) Delete(key string) error {
	delete(m.cache, key)
	return nil
}

type mockError struct {
	message string
}

func (e *mockError) Error() string {
	return e.message
}

// stubRenderer returns canned HTML instead of driving a real browser
type stubRenderer struct {
	html    string
	err     error
	calls   int
	retries int
}

func (r *stubRenderer) Render(_ context.Context, _ string, _ string) (*RenderResult, error) {
	r.calls++
	if r.err != nil {
		return &RenderResult{Retries: r.retries}, r.err
	}
	return &RenderResult{HTML: r.html, Retries: r.retries}, nil
}
