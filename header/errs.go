package header

import "errors"

// ErrNotFound is returned when the source ends before the header sentinel
// has been matched.  Such a source is not an AER data file.
var ErrNotFound = errors.New("header sentinel not found")
