package framewire

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/framewire/internal/wire"
)

var (
	// ErrInvalidHeader reports a buffer whose first four bytes are not the
	// CTXB magic. Nothing past the header is inspected.
	ErrInvalidHeader = errors.New("framewire: invalid header")

	// ErrShortBuffer reports a read past the end of the input. A decode
	// that underflows never yields a partially populated frame.
	ErrShortBuffer = wire.ErrShortBuffer

	// ErrTooLarge reports an input rejected by Options.MaxDecode before
	// parsing.
	ErrTooLarge = errors.New("framewire: input exceeds decode size limit")

	// ErrTooDeep reports a value tree nested beyond Options.MaxDepth.
	ErrTooDeep = errors.New("framewire: value nesting exceeds depth limit")
)

// UnknownFrameTypeError reports a frame-type byte with no dictionary entry.
type UnknownFrameTypeError struct {
	Code byte
}

func (e *UnknownFrameTypeError) Error() string {
	return fmt.Sprintf("framewire: unknown frame type code 0x%02X", e.Code)
}

// SerializeError wraps any encode-time failure. Serialize never returns a
// bare internal error.
type SerializeError struct {
	Cause error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("framewire: serialize: %v", e.Cause)
}

func (e *SerializeError) Unwrap() error { return e.Cause }
