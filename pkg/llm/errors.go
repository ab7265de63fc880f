package llm

import (
	"errors"
	"fmt"
)

// Failure classes every provider maps onto, so callers can translate them
// to their own taxonomy without parsing provider-specific messages.
var (
	ErrModelNotFound   = errors.New("llm: model not found")
	ErrQuotaExceeded   = errors.New("llm: quota exceeded")
	ErrContentRejected = errors.New("llm: content rejected by safety policy")
)

// TransportError wraps connection-level failures (DNS, TLS, timeouts,
// unreadable responses).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("llm transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
