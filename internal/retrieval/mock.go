package retrieval

import (
	"context"
	"sync"
)

// Mock is a deterministic Retriever for testing. It returns canned
// fragments and records every query.
type Mock struct {
	mu        sync.Mutex
	fragments []Fragment
	err       error
	Queries   []string
}

// NewMock creates a Mock that returns the given fragments for every query.
func NewMock(fragments ...Fragment) *Mock {
	return &Mock{fragments: fragments}
}

// NewMockError creates a Mock that fails every retrieval with err.
func NewMockError(err error) *Mock {
	return &Mock{err: err}
}

// Retrieve returns the canned fragments, truncated to topK when topK > 0.
func (m *Mock) Retrieve(_ context.Context, query string, topK int) ([]Fragment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Queries = append(m.Queries, query)

	if m.err != nil {
		return nil, m.err
	}

	out := m.fragments
	if topK > 0 && len(out) > topK {
		out = out[:topK]
	}
	return out, nil
}

// CallCount returns the number of Retrieve calls made.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}
