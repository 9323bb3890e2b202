package event

import (
	"encoding/binary"
	"errors"
	"io"
)

// RecordSize is the size in bytes of one encoded event.
const RecordSize = 8

const (
	typeBit     = 1 << 31
	polarityBit = 1 << 11
	specialBit  = 1 << 10

	xShift = 12
	xMask  = 0x3ff
	yShift = 22
	yMask  = 0x1ff
)

// DecodeAddress extracts the fields of an address word.  It returns a
// *TypeError if the word does not describe an addressed event.
func DecodeAddress(addr uint32) (Event, error) {
	if addr&typeBit != 0 {
		return Event{}, &TypeError{Addr: addr}
	}
	return Event{
		Special:  addr&specialBit != 0,
		Polarity: addr&polarityBit != 0,
		X:        uint16(addr >> xShift & xMask),
		Y:        uint16(addr >> yShift & yMask),
	}, nil
}

// Decode decodes one record from rec, which must hold at least RecordSize
// bytes.
func Decode(rec []byte, mode TimestampMode) (Event, error) {
	if len(rec) < RecordSize {
		return Event{}, ErrShortRead
	}
	ev, err := DecodeAddress(binary.BigEndian.Uint32(rec[:4]))
	if err != nil {
		return Event{}, err
	}
	ev.Timestamp = mode.Widen(binary.BigEndian.Uint32(rec[4:RecordSize]))
	return ev, nil
}

// DecodeOption configures a Decoder.
type DecodeOption func(*Decoder)

// DecodeTimestamps sets the timestamp interpretation, Signed by default.
func DecodeTimestamps(m TimestampMode) DecodeOption {
	return func(d *Decoder) {
		d.mode = m
	}
}

// Decoder reads records sequentially from a reader.
type Decoder struct {
	r    io.Reader
	mode TimestampMode
	buf  [RecordSize]byte
}

func NewDecoder(r io.Reader, opts ...DecodeOption) *Decoder {
	d := &Decoder{r: r}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Reset makes d read from r, keeping its options.
func (d *Decoder) Reset(r io.Reader) {
	d.r = r
}

func (d *Decoder) Mode() TimestampMode {
	return d.mode
}

// Decode reads and decodes the next record.  It returns io.EOF at a record
// boundary and ErrShortRead if the stream ends inside a record.  A record
// with an unsupported type is consumed whole before its *TypeError is
// returned, so decoding may continue with the next record.
func (d *Decoder) Decode() (Event, error) {
	if _, err := io.ReadFull(d.r, d.buf[:4]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Event{}, ErrShortRead
		}
		return Event{}, err
	}
	if _, err := io.ReadFull(d.r, d.buf[4:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Event{}, ErrShortRead
		}
		return Event{}, err
	}
	return Decode(d.buf[:], d.mode)
}
