package aedat

import (
	"github.com/signadot/aedat/collection"
	"github.com/signadot/aedat/event"
)

// Option configures a Source.
type Option func(*sourceOpts)

type sourceOpts struct {
	mode            event.TimestampMode
	capacity        int
	skipUnsupported bool
}

// WithTimestampMode sets how timestamp words are interpreted.  The default
// is event.Signed.
func WithTimestampMode(m event.TimestampMode) Option {
	return func(opts *sourceOpts) {
		opts.mode = m
	}
}

// WithCapacity sets the initial buffer capacity of the reads.  The
// default, also selected by a negative n, is collection.DefaultCapacity.
func WithCapacity(n int) Option {
	return func(opts *sourceOpts) {
		if n < 0 {
			n = collection.DefaultCapacity
		}
		opts.capacity = n
	}
}

func defaultSourceOpts() *sourceOpts {
	return &sourceOpts{capacity: collection.DefaultCapacity}
}

// SkipUnsupported makes reads skip records of unsupported event types
// instead of failing.
func SkipUnsupported() Option {
	return func(opts *sourceOpts) {
		opts.skipUnsupported = true
	}
}
