// Package collection stores decoded events column-wise.
//
// Events is an ordered, column-oriented sequence of events: one slice per
// field, all of equal length, index i of each describing the same event.
// Buffer is the growable form used while decoding; it reserves capacity up
// front, doubles when full, and is fitted to its exact length when
// decoding stops.
//
// Every operation that produces an Events from another copies; the
// result never shares storage with its source.
package collection
