package chunkpos

import (
	"sort"

	"github.com/npillmayer/chunkpos/chunk"
)

// Locate maps an absolute byte offset within the concatenation of chunks to
// its row and column. Only the line starts of the chunk containing offset are
// inspected; preceding chunks contribute their newline counts and, for the
// line running into the target chunk, their trailing line lengths.
//
// An offset equal to the total length addresses the position after the last
// byte.
func Locate(chunks []chunk.Chunk, offset int) (Position, error) {
	if offset < 0 {
		return Position{}, ErrIndexOutOfBounds
	}
	var pos Position
	base := 0
	for i, c := range chunks {
		if offset < base+c.Len() || (offset == base+c.Len() && i == len(chunks)-1) {
			return locateIn(c, pos, offset-base), nil
		}
		pos = advance(pos, c)
		base += c.Len()
	}
	if offset == base {
		return pos, nil
	}
	tracer().Debugf("offset %d beyond text length %d", offset, base)
	return Position{}, ErrIndexOutOfBounds
}

// advance moves pos over the full text of c, counting only real terminators.
func advance(pos Position, c chunk.Chunk) Position {
	n := c.LineCount()
	if n == 0 {
		return pos
	}
	rows := n - 1
	if c.EndsWithTerminator() {
		rows++
	}
	if rows == 0 {
		pos.Column += uint64(c.Len())
		return pos
	}
	pos.Row += uint64(rows)
	if c.EndsWithTerminator() {
		pos.Column = 0
	} else {
		pos.Column = uint64(len(c.LastLine()))
	}
	return pos
}

func locateIn(c chunk.Chunk, pos Position, local int) Position {
	starts := c.LineStarts()
	// index of the last line start <= local
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > local }) - 1
	if line < 0 {
		line = 0
	}
	if line == len(starts)-1 && line > 0 && !c.EndsWithTerminator() {
		// local == Len() on an unterminated last line
		line--
	}
	if line == 0 {
		pos.Column += uint64(local)
		return pos
	}
	pos.Row += uint64(line)
	pos.Column = uint64(local - starts[line])
	return pos
}
