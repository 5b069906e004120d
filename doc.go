/*
Package chunkpos tracks row/column positions over text held as a sequence of
immutable chunks.

# Chunks

Text editors, incremental lexers and diff engines often hold their text as
fragments rather than as one large string. Asking "which row and column does
byte offset X correspond to" must then be answered without rescanning every
fragment seen so far. Package chunk indexes the line starts of each fragment
once, at construction time, and expresses the effect of a fragment on a
running position as a delta. This package combines such deltas: deltas of
many chunks are computed in parallel and folded into absolute positions in a
single sequential pass.

Only '\n' terminates a line. Columns are counted in bytes, not in runes or
grapheme clusters.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

  1. Redistributions of source code must retain the above copyright notice, this
     list of conditions and the following disclaimer.

  2. Redistributions in binary form must reproduce the above copyright notice,
     this list of conditions and the following disclaimer in the documentation
     and/or other materials provided with the distribution.

  3. Neither the name of the copyright holder nor the names of its
     contributors may be used to endorse or promote products derived from
     this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package chunkpos

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chunkpos'
func tracer() tracing.Trace {
	return tracing.Select("chunkpos")
}

// PosError is an error type for the chunkpos module
type PosError string

func (e PosError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a byte offset is
// greater than the length of the text.
const ErrIndexOutOfBounds = PosError("index out of bounds")
