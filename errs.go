package aedat

import (
	"errors"

	"github.com/signadot/aedat/header"
)

var (
	// ErrFormat is returned when a source has no header sentinel.
	ErrFormat = header.ErrNotFound
	ErrClosed = errors.New("source closed")
)
