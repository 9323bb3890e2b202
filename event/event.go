package event

import "fmt"

const (
	TicksPerSecond      = 1_000_000
	TicksPerMillisecond = 1_000
)

// Event is one decoded addressed event.
type Event struct {
	Timestamp int64
	Special   bool
	// Polarity is true for ON events and false for OFF events.
	Polarity bool
	X, Y     uint16
}

func (e Event) String() string {
	kind := "off"
	switch {
	case e.Special:
		kind = "special"
	case e.Polarity:
		kind = "on"
	}
	return fmt.Sprintf("%d %s (%d,%d)", e.Timestamp, kind, e.X, e.Y)
}
