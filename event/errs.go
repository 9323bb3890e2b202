package event

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrUnsupportedType reports an address word whose type bit marks an
	// event kind other than an addressed DVS event.
	ErrUnsupportedType = errors.New("unsupported event type")
	// ErrShortRead reports a trailing record of fewer than RecordSize bytes.
	ErrShortRead = fmt.Errorf("short record: %w", io.ErrUnexpectedEOF)
)

// TypeError carries the offending address word of an unsupported record.
type TypeError struct {
	Addr uint32
}

func (e *TypeError) Unwrap() error {
	return ErrUnsupportedType
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: address word %#08x", ErrUnsupportedType, e.Addr)
}
