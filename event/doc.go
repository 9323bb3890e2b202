// Package event decodes the 8-byte records of an AER data file.
//
// Each record is a big-endian 32-bit address word followed by a
// big-endian 32-bit timestamp.  Only addressed (DVS) events are supported;
// the address word layout is
//
//	bit  31     event type, must be 0
//	bits 22-30  y
//	bits 12-21  x
//	bit  11     polarity (1 = ON)
//	bit  10     special marker
//
// Timestamps are in ticks of one microsecond.
package event
