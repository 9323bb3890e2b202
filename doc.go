// Package aedat reads AER data files recorded by event-based vision
// sensors.
//
// A Source wraps a seekable byte source positioned past the ASCII header.
// Events are read with one of three strategies:
//
//   - ReadAll decodes to the end of the stream.
//   - ReadN decodes at most n events.
//   - ReadUntil decodes until a predicate fires outside a debounce
//     interval.
//
// End of stream is not an error for any of them.  A trailing partial
// record is discarded.
//
// # Usage
//
//	src, err := aedat.Open("recording.aedat")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//	status, evs, err := src.ReadUntil(event.IsSpecial, event.TicksPerSecond)
//
// # Related Packages
//
//   - github.com/signadot/aedat/event - record decoding and predicates
//   - github.com/signadot/aedat/collection - column-wise event storage
//   - github.com/signadot/aedat/histogram - occupancy grids
package aedat
