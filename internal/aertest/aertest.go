// Package aertest builds synthetic AER recordings for tests.
package aertest

import (
	"bytes"
	"encoding/binary"

	"github.com/signadot/aedat/event"
	"github.com/signadot/aedat/header"
)

// DefaultHeader is a typical recorder header without the sentinel.
const DefaultHeader = "#!AER-DAT2.0\r\n# This is a raw AE data file - do not edit\r\n# Data format is int32 address, int32 timestamp (8 bytes total)\r\n"

// Address packs the fields of an addressed event into an address word.
func Address(special, polarity bool, x, y uint16) uint32 {
	a := uint32(x&0x3ff)<<12 | uint32(y&0x1ff)<<22
	if polarity {
		a |= 1 << 11
	}
	if special {
		a |= 1 << 10
	}
	return a
}

// Record encodes an address word and raw timestamp word.
func Record(addr, ts uint32) []byte {
	b := make([]byte, event.RecordSize)
	binary.BigEndian.PutUint32(b[:4], addr)
	binary.BigEndian.PutUint32(b[4:], ts)
	return b
}

// Builder accumulates a recording.
type Builder struct {
	buf bytes.Buffer
}

// New starts a recording with the given header text followed by the sentinel.
func New(hdr string) *Builder {
	b := &Builder{}
	b.buf.WriteString(hdr)
	b.buf.WriteString(header.Sentinel)
	return b
}

// Event appends an addressed event.
func (b *Builder) Event(e event.Event) *Builder {
	b.buf.Write(Record(Address(e.Special, e.Polarity, e.X, e.Y), uint32(e.Timestamp)))
	return b
}

func (b *Builder) Events(es ...event.Event) *Builder {
	for _, e := range es {
		b.Event(e)
	}
	return b
}

// Raw appends arbitrary bytes, such as an unsupported record or a
// truncated tail.
func (b *Builder) Raw(p []byte) *Builder {
	b.buf.Write(p)
	return b
}

func (b *Builder) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

func (b *Builder) Reader() *bytes.Reader {
	return bytes.NewReader(b.Bytes())
}
