// Package histogram reduces events to a pixel occupancy grid.
package histogram

import (
	"errors"
	"fmt"

	"github.com/signadot/aedat/collection"
)

// Sensor size of a DAVIS240.
const (
	DefaultXDim = 240
	DefaultYDim = 180
)

var ErrIndexOutOfRange = errors.New("index out of range")

// RangeError reports an event whose coordinates fall outside the grid.
type RangeError struct {
	Index      int
	X, Y       uint16
	XDim, YDim int
}

func (e *RangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: event %d at (%d,%d) outside %dx%d grid",
		ErrIndexOutOfRange, e.Index, e.X, e.Y, e.XDim, e.YDim)
}

// Option configures Compute.
type Option func(*histOpts)

type histOpts struct {
	drop bool
}

// DropOutOfRange makes Compute ignore events outside the grid rather
// than fail.
func DropOutOfRange() Option {
	return func(opts *histOpts) {
		opts.drop = true
	}
}

// Grid holds event counts indexed by x then y.
type Grid struct {
	XDim, YDim int
	counts     []int
	// Dropped counts events ignored under DropOutOfRange.
	Dropped int
}

func (g *Grid) At(x, y int) int {
	return g.counts[x*g.YDim+y]
}

func (g *Grid) Sum() int {
	n := 0
	for _, c := range g.counts {
		n += c
	}
	return n
}

// Rows returns the counts as XDim rows of YDim columns.
func (g *Grid) Rows() [][]int {
	res := make([][]int, g.XDim)
	for x := range res {
		res[x] = g.counts[x*g.YDim : (x+1)*g.YDim : (x+1)*g.YDim]
	}
	return res
}

// Compute counts addressed events per pixel.  Special events are never
// counted; ON events are counted if on is set and OFF events if off is.
// An event outside the xdim by ydim grid yields a *RangeError unless
// DropOutOfRange is given.
func Compute(c *collection.Events, xdim, ydim int, on, off bool, opts ...Option) (*Grid, error) {
	if xdim <= 0 || ydim <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", xdim, ydim)
	}
	hOpts := &histOpts{}
	for _, opt := range opts {
		opt(hOpts)
	}
	g := &Grid{XDim: xdim, YDim: ydim, counts: make([]int, xdim*ydim)}
	if c.Len() == 0 {
		return g, nil
	}
	special, pol, xs, ys := c.Special(), c.Polarity(), c.X(), c.Y()
	for i := range c.Len() {
		if special[i] {
			continue
		}
		if pol[i] && !on || !pol[i] && !off {
			continue
		}
		x, y := int(xs[i]), int(ys[i])
		if x >= xdim || y >= ydim {
			if hOpts.drop {
				g.Dropped++
				continue
			}
			return nil, &RangeError{Index: i, X: xs[i], Y: ys[i], XDim: xdim, YDim: ydim}
		}
		g.counts[x*ydim+y]++
	}
	return g, nil
}
