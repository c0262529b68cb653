package llm

import (
	"context"
	"sync"
)

// MockClient is a test double for the completion service. If CompleteFunc
// is set it handles the call; otherwise Response and Err are returned
// as-is. Every request is recorded.
type MockClient struct {
	CompleteFunc func(ctx context.Context, req Request) (string, error)
	Response     string
	Err          error

	mu    sync.Mutex
	calls []Request
}

// Complete implements Client.
func (m *MockClient) Complete(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Calls returns a copy of all recorded requests.
func (m *MockClient) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
