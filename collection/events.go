package collection

import (
	"fmt"
	"slices"

	"github.com/signadot/aedat/event"
)

// Events is a column-wise sequence of events.  The zero value is empty
// and ready to use.
type Events struct {
	ts       []int64
	special  []bool
	polarity []bool
	x, y     []uint16
}

// makeEvents allocates all columns with length n.  Every constructor goes
// through here so the columns stay in lockstep.
func makeEvents(n int) *Events {
	return &Events{
		ts:       make([]int64, n),
		special:  make([]bool, n),
		polarity: make([]bool, n),
		x:        make([]uint16, n),
		y:        make([]uint16, n),
	}
}

// FromSlice builds a collection from row-wise events.
func FromSlice(es []event.Event) *Events {
	c := makeEvents(len(es))
	for i, e := range es {
		c.set(i, e)
	}
	return c
}

func (c *Events) set(i int, e event.Event) {
	c.ts[i] = e.Timestamp
	c.special[i] = e.Special
	c.polarity[i] = e.Polarity
	c.x[i] = e.X
	c.y[i] = e.Y
}

// copyFrom copies n events of src starting at s into c starting at d.
func (c *Events) copyFrom(d int, src *Events, s, n int) {
	copy(c.ts[d:d+n], src.ts[s:s+n])
	copy(c.special[d:d+n], src.special[s:s+n])
	copy(c.polarity[d:d+n], src.polarity[s:s+n])
	copy(c.x[d:d+n], src.x[s:s+n])
	copy(c.y[d:d+n], src.y[s:s+n])
}

func (c *Events) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ts)
}

// At returns the event at index i.
func (c *Events) At(i int) event.Event {
	return event.Event{
		Timestamp: c.ts[i],
		Special:   c.special[i],
		Polarity:  c.polarity[i],
		X:         c.x[i],
		Y:         c.y[i],
	}
}

// Column views.  The returned slices alias the collection; writing
// through them changes the collection.
func (c *Events) Timestamps() []int64 { return c.ts }
func (c *Events) Special() []bool     { return c.special }
func (c *Events) Polarity() []bool    { return c.polarity }
func (c *Events) X() []uint16         { return c.x }
func (c *Events) Y() []uint16         { return c.y }

// Slice returns a copy of the events in [lo, hi).
func (c *Events) Slice(lo, hi int) *Events {
	if lo < 0 || hi < lo || hi > c.Len() {
		panic(fmt.Sprintf("collection: slice [%d:%d] out of range for length %d", lo, hi, c.Len()))
	}
	res := makeEvents(hi - lo)
	res.copyFrom(0, c, lo, hi-lo)
	return res
}

// Mask returns a copy of the events i for which mask[i] is true.
func (c *Events) Mask(mask []bool) (*Events, error) {
	if len(mask) != c.Len() {
		return nil, fmt.Errorf("%w: mask has %d entries, collection %d", ErrMaskLength, len(mask), c.Len())
	}
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	res := makeEvents(n)
	j := 0
	for i, m := range mask {
		if !m {
			continue
		}
		res.copyFrom(j, c, i, 1)
		j++
	}
	return res, nil
}

// Filter returns a copy of the events satisfying p.
func (c *Events) Filter(p event.Predicate) *Events {
	mask := make([]bool, c.Len())
	for i := range mask {
		mask[i] = p(c.At(i))
	}
	res, _ := c.Mask(mask)
	return res
}

// Concat returns a new collection holding the events of c followed by
// those of o.
func (c *Events) Concat(o *Events) *Events {
	n, m := c.Len(), o.Len()
	res := makeEvents(n + m)
	if n > 0 {
		res.copyFrom(0, c, 0, n)
	}
	if m > 0 {
		res.copyFrom(n, o, 0, m)
	}
	return res
}

// Equal reports whether c and o hold the same events in the same order.
func (c *Events) Equal(o *Events) bool {
	if c.Len() != o.Len() {
		return false
	}
	if c.Len() == 0 {
		return true
	}
	return slices.Equal(c.ts, o.ts) &&
		slices.Equal(c.special, o.special) &&
		slices.Equal(c.polarity, o.polarity) &&
		slices.Equal(c.x, o.x) &&
		slices.Equal(c.y, o.y)
}

// Events returns the collection row-wise.
func (c *Events) Events() []event.Event {
	res := make([]event.Event, c.Len())
	for i := range res {
		res[i] = c.At(i)
	}
	return res
}
