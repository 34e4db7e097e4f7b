package narrator

import (
	"context"
	"sync"
)

// MockResponse is one scripted Synthesize result.
type MockResponse struct {
	Clip *Clip
	Err  error
}

// MockSynth returns scripted responses in order, then repeats the last one.
// With no script it returns a short silent WAV clip.
type MockSynth struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Request
}

// NewMockSynth creates a MockSynth.
func NewMockSynth(responses ...MockResponse) *MockSynth {
	return &MockSynth{responses: responses}
}

func (m *MockSynth) Synthesize(ctx context.Context, req Request) (*Clip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(m.responses) == 0 {
		return &Clip{Data: encodeWAV(make([]byte, 2*toneSampleRate/10), toneSampleRate, 1), Format: FormatWAV}, nil
	}
	idx := min(len(m.calls), len(m.responses)) - 1
	r := m.responses[idx]
	return r.Clip, r.Err
}

func (m *MockSynth) Name() string { return BackendMock }

// CallCount returns how many times Synthesize was called.
func (m *MockSynth) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns the recorded requests.
func (m *MockSynth) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}
