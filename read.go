package aedat

import (
	"fmt"
	"io"
	"math"

	"github.com/signadot/aedat/collection"
	"github.com/signadot/aedat/debug"
	"github.com/signadot/aedat/event"
	"github.com/signadot/aedat/header"
)

// Status tells why ReadUntil stopped.
type Status int

const (
	// EndOfStream means the stream ended without a trigger.
	EndOfStream Status = iota
	// Triggered means an event satisfied the predicate outside the
	// debounce interval.
	Triggered
)

func (st Status) String() string {
	switch st {
	case EndOfStream:
		return "end-of-stream"
	case Triggered:
		return "triggered"
	default:
		return fmt.Sprintf("<status %d>", int(st))
	}
}

func (st Status) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

// ReadAll decodes every remaining event.
func (s *Source) ReadAll() (*collection.Events, error) {
	buf := collection.NewBuffer(s.opts.capacity)
	for {
		e, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		buf.Append(e)
	}
	if debug.Read() {
		debug.Logf("read: %d events", buf.Len())
	}
	return buf.Events(), nil
}

// ReadN decodes at most n events.  It returns the number decoded, which is
// less than n only if the stream ended first.  The buffer starts at the
// smaller of n and the configured capacity and grows as needed.
func (s *Source) ReadN(n int) (int, *collection.Events, error) {
	if n < 0 {
		return 0, nil, fmt.Errorf("negative event count %d", n)
	}
	buf := collection.NewBuffer(min(n, s.opts.capacity))
	for i := 0; i < n; i++ {
		e, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, nil, err
		}
		buf.Set(i, e)
	}
	evs := buf.Events()
	return evs.Len(), evs, nil
}

// ReadUntil decodes events until one satisfying p arrives no earlier
// than the current deadline, or the stream ends.
//
// The deadline starts at the first event's timestamp plus minInterval.
// An event satisfying p before the deadline does not trigger; it moves the
// deadline to its own timestamp plus minInterval.  The returned events
// include the triggering event.
func (s *Source) ReadUntil(p event.Predicate, minInterval int64) (Status, *collection.Events, error) {
	buf := collection.NewBuffer(s.opts.capacity)
	var deadline int64
	for {
		e, err := s.Next()
		if err == io.EOF {
			return EndOfStream, buf.Events(), nil
		}
		if err != nil {
			return EndOfStream, nil, err
		}
		if buf.Len() == 0 {
			deadline = after(e.Timestamp, minInterval)
		}
		buf.Append(e)
		if !p(e) {
			continue
		}
		if e.Timestamp >= deadline {
			if debug.Until() {
				debug.Logf("until: triggered by %v after %d events", e, buf.Len())
			}
			return Triggered, buf.Events(), nil
		}
		if debug.Until() {
			debug.Logf("until: %v before deadline %d, debounced", e, deadline)
		}
		deadline = after(e.Timestamp, minInterval)
	}
}

// after returns ts+d, saturating at math.MaxInt64.
func after(ts, d int64) int64 {
	if d > 0 && ts > math.MaxInt64-d {
		return math.MaxInt64
	}
	return ts + d
}

// ReadFile reads the header and every event of the named file.
func ReadFile(path string, opts ...Option) (*header.Header, *collection.Events, error) {
	s, err := Open(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()
	evs, err := s.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return s.Header(), evs, nil
}
