package collection

import (
	"fmt"

	"github.com/signadot/aedat/event"
)

// DefaultCapacity is the capacity used by NewBuffer for a negative
// argument; it covers several minutes of a typical recording without
// growing.
const DefaultCapacity = 5_000_000

// minGrow is the capacity a Buffer grows to from zero.
const minGrow = 1024

// Buffer is a growable Events under construction.  Its columns are
// allocated to the full capacity; len tracks how many are in use.  A
// Buffer must not be shared between goroutines.
type Buffer struct {
	cols *Events
	len  int
}

// NewBuffer returns an empty buffer with room for capacity events.  A
// negative capacity means DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{cols: makeEvents(capacity)}
}

func (b *Buffer) Len() int { return b.len }
func (b *Buffer) Cap() int { return b.cols.Len() }

// Set writes e at index i.  Writing at i == Cap() doubles the capacity
// first; i beyond that panics.  Len becomes at least i+1.
func (b *Buffer) Set(i int, e event.Event) {
	switch c := b.Cap(); {
	case i < 0 || i > c:
		panic(fmt.Sprintf("collection: set index %d out of range for capacity %d", i, c))
	case i == c:
		b.resize(max(2*c, minGrow))
	}
	b.cols.set(i, e)
	if i >= b.len {
		b.len = i + 1
	}
}

// Append writes e at Len().
func (b *Buffer) Append(e event.Event) {
	b.Set(b.len, e)
}

// Fit truncates the buffer to exactly count events and releases unused
// capacity.
func (b *Buffer) Fit(count int) {
	if count < 0 || count > b.Cap() {
		panic(fmt.Sprintf("collection: fit %d out of range for capacity %d", count, b.Cap()))
	}
	if count != b.Cap() {
		b.resize(count)
	}
	b.len = count
}

// Events returns the buffered events.  It fits the buffer to Len() and
// hands over its storage: the buffer is left empty.
func (b *Buffer) Events() *Events {
	b.Fit(b.len)
	res := b.cols
	b.cols = makeEvents(0)
	b.len = 0
	return res
}

func (b *Buffer) resize(n int) {
	cols := makeEvents(n)
	cols.copyFrom(0, b.cols, 0, min(n, b.len))
	b.cols = cols
}
