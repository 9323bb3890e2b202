package aedat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/aedat/debug"
	"github.com/signadot/aedat/event"
	"github.com/signadot/aedat/header"
)

const readBufSize = 64 << 10

// Source reads events from a seekable AER data stream.  It owns the
// stream's cursor and must not be used concurrently.
type Source struct {
	rs     io.ReadSeeker
	br     *bufio.Reader
	dec    *event.Decoder
	hdr    *header.Header
	opts   *sourceOpts
	closed bool

	skipped int
}

// Open opens the named file.  The returned Source owns the file; Close it
// when done.
func Open(path string, opts ...Option) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s, err := NewSource(f, opts...)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// NewSource reads the header of rs and positions it at the first record.
// On success the Source takes ownership of rs: Close closes it if it is an
// io.Closer.  On failure rs is left to the caller.
func NewSource(rs io.ReadSeeker, opts ...Option) (*Source, error) {
	sOpts := defaultSourceOpts()
	for _, opt := range opts {
		opt(sOpts)
	}
	s := &Source{
		rs:   rs,
		br:   bufio.NewReaderSize(rs, readBufSize),
		opts: sOpts,
	}
	s.dec = event.NewDecoder(s.br, event.DecodeTimestamps(sOpts.mode))
	if err := s.Rewind(); err != nil {
		return nil, err
	}
	return s, nil
}

// Header returns the header found by the last Rewind.
func (s *Source) Header() *header.Header {
	return s.hdr
}

// Skipped returns the number of unsupported records skipped since the last
// Rewind.
func (s *Source) Skipped() int {
	return s.skipped
}

// Rewind seeks back to the start of the stream and scans the header again,
// leaving the cursor at the first record.
func (s *Source) Rewind() error {
	if s.closed {
		return ErrClosed
	}
	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("error seeking to start: %w", err)
	}
	s.br.Reset(s.rs)
	h, err := header.Scan(s.br)
	if err != nil {
		return err
	}
	if debug.Header() {
		debug.Logf("header: %d lines, version %q, records at offset %d",
			len(h.Lines()), h.Version(), h.Size)
	}
	s.hdr = h
	s.skipped = 0
	return nil
}

// Close releases the underlying stream.  Closing twice is a no-op.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.rs.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Next decodes the next event.  It returns io.EOF at the end of the
// stream, including when fewer than a record's worth of bytes remain.
func (s *Source) Next() (event.Event, error) {
	if s.closed {
		return event.Event{}, ErrClosed
	}
	for {
		e, err := s.dec.Decode()
		switch {
		case err == nil:
			return e, nil
		case errors.Is(err, event.ErrShortRead):
			if debug.Read() {
				debug.Logf("read: discarding partial trailing record")
			}
			return event.Event{}, io.EOF
		case s.opts.skipUnsupported && errors.Is(err, event.ErrUnsupportedType):
			s.skipped++
			if debug.Read() {
				debug.Logf("read: skipping %v", err)
			}
		default:
			return event.Event{}, err
		}
	}
}
