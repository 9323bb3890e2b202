package collection

import "errors"

// ErrMaskLength is returned by Events.Mask when the mask and the
// collection differ in length.
var ErrMaskLength = errors.New("mask length mismatch")
