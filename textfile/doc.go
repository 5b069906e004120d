/*
Package textfile loads text files as sequences of chunks.

Fragments are read in the background and broadcast to subscribers as soon as
they are indexed, so clients may start composing positions before the whole
file has been read. Load wraps this into a synchronous call.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chunkpos'
func tracer() tracing.Trace {
	return tracing.Select("chunkpos")
}

var (
	// ErrNotRegular signals that a path does not name a regular file.
	ErrNotRegular = errors.New("textfile: not a regular file")
	// ErrStarted signals a subscription after loading has started.
	ErrStarted = errors.New("textfile: loading already started")
	// ErrShortRead signals that a fragment could not be read completely.
	ErrShortRead = errors.New("textfile: not all bytes loaded for fragment")
)
