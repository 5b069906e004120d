package chunk

import "fmt"

// Position is an absolute row/column coordinate in a document.
// Both are zero-based; Column counts bytes.
type Position struct {
	Row    uint64
	Column uint64
}

// Less reports whether p comes before q in document order.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Column < q.Column
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// EndPosition returns the position reached after appending the chunk at start.
//
// A chunk whose last line is not terminated advances to the beginning of the
// following row, as if a terminator were present.
func (c Chunk) EndPosition(start Position) Position {
	end := start
	if c.IsEmpty() {
		return end
	}
	last := c.LineCount() - 1
	end.Row += uint64(last)
	if end.Row != start.Row {
		end.Column = 0
	}
	end.Column += uint64(len(c.Line(last)))
	if !c.EndsWithTerminator() {
		end.Row++
		end.Column = 0
	}
	return end
}

// BackwardStart returns the seed position for composing chunks tail to head.
func (c Chunk) BackwardStart() Position {
	var pos Position
	if c.EndsWithTerminator() {
		pos.Column = uint64(len(c.LastLine()))
	}
	return pos
}

// BackwardEnd mirrors EndPosition for composition in reverse document order.
func (c Chunk) BackwardEnd(start Position) Position {
	end := start
	if c.IsEmpty() {
		return end
	}
	end.Row += uint64(c.LineCount() - 1)
	if c.EndsWithTerminator() {
		end.Row++
	}
	if end.Row != start.Row {
		end.Column = backwardColumn(c)
	} else {
		end.Column += uint64(len(c.LastLine()))
	}
	return end
}

// backwardColumn is the column BackwardEnd settles on after a row change.
// For a chunk starting with a terminator it is the first line's length
// without that terminator.
func backwardColumn(c Chunk) uint64 {
	if c.content[0] == Terminator {
		return uint64(len(c.FirstLine()) - 1)
	}
	return 0
}
