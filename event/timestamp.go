package event

import (
	"errors"
	"fmt"
)

// TimestampMode selects how the 32-bit timestamp word is interpreted.
// Recorders disagree on its signedness, so it is a decoding parameter.
type TimestampMode int

const (
	// Signed interprets the timestamp as a two's complement int32.
	Signed TimestampMode = iota
	// Unsigned interprets the timestamp as a uint32.
	Unsigned
)

var ErrBadTimestampMode = errors.New("bad timestamp mode")

func ParseTimestampMode(v string) (TimestampMode, error) {
	m, ok := map[string]TimestampMode{
		"s":        Signed,
		"signed":   Signed,
		"u":        Unsigned,
		"unsigned": Unsigned,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadTimestampMode, v)
}

// Widen converts a raw timestamp word to ticks.
func (m TimestampMode) Widen(w uint32) int64 {
	if m == Unsigned {
		return int64(w)
	}
	return int64(int32(w))
}

func (m TimestampMode) String() string {
	switch m {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	default:
		return fmt.Sprintf("<timestamp mode %d>", int(m))
	}
}
