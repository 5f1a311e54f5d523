package host

import (
	"sync"
)

// FixedHost is a degenerate capability implementation for tests: every
// RandomByte call returns the same constant and log messages are captured
// in memory. The sandbox must initialize and run normally even against
// this host.
type FixedHost struct {
	Byte byte

	mu       sync.Mutex
	messages []string
}

// NewFixedHost creates a FixedHost returning b from every RandomByte call.
func NewFixedHost(b byte) *FixedHost {
	return &FixedHost{Byte: b}
}

func (h *FixedHost) RandomByte() byte {
	return h.Byte
}

func (h *FixedHost) Log(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, message)
}

// Messages returns a copy of every message logged so far.
func (h *FixedHost) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.messages))
	copy(out, h.messages)
	return out
}
