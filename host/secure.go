package host

import (
	"crypto/rand"

	"go.uber.org/zap"
)

// SecureHost is the production capability implementation: entropy from
// crypto/rand and diagnostics into a zap logger.
type SecureHost struct {
	logger   *zap.Logger
	fallback fallbackByte
}

// NewSecureHost creates a SecureHost. A nil logger discards diagnostics.
func NewSecureHost(logger *zap.Logger) *SecureHost {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SecureHost{logger: logger}
}

func (h *SecureHost) RandomByte() byte {
	var buf [1]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// The import contract forbids failure; degrade to a synthesized
		// deterministic byte instead.
		return h.fallback.next()
	}
	return buf[0]
}

func (h *SecureHost) Log(message string) {
	h.logger.Info(message, zap.String("source", "sandbox"))
}
