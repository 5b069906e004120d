package chunk

// Terminator is the only byte recognized as a line break. Carriage returns are
// ordinary content.
const Terminator = '\n'

// Chunk stores immutable text together with the offsets of its line starts.
//
// Columns and lengths are counted in bytes. A chunk owns its content; line
// views returned by accessors borrow from it.
type Chunk struct {
	content []byte
	starts  []int // starts[0] == 0, starts[len-1] == len(content)
}

// New creates a chunk from text.
func New(text string) Chunk {
	return index([]byte(text))
}

// NewBytes creates a chunk from bytes. The input is copied.
func NewBytes(text []byte) Chunk {
	return index(append([]byte(nil), text...))
}

func index(content []byte) Chunk {
	starts := make([]int, 1, 8)
	for i, b := range content {
		if b == Terminator {
			starts = append(starts, i+1)
		}
	}
	// Terminator-ending content already recorded len(content) as the next start.
	if starts[len(starts)-1] != len(content) {
		starts = append(starts, len(content))
	}
	return Chunk{content: content, starts: starts}
}

// Len returns the text length in bytes.
func (c Chunk) Len() int {
	return len(c.content)
}

// IsEmpty reports whether the chunk has no bytes.
func (c Chunk) IsEmpty() bool {
	return len(c.content) == 0
}

// String returns the chunk text.
func (c Chunk) String() string {
	return string(c.content)
}

// Bytes returns a copied byte slice of the chunk text.
func (c Chunk) Bytes() []byte {
	return append([]byte(nil), c.content...)
}

// LineStarts returns a copy of the line start offsets, including the trailing
// sentinel len(content).
func (c Chunk) LineStarts() []int {
	if c.starts == nil { // zero value Chunk
		return []int{0}
	}
	return append([]int(nil), c.starts...)
}

// EndsWithTerminator reports whether the last byte of the chunk is a line
// terminator, i.e. whether the last line is closed inside this chunk.
func (c Chunk) EndsWithTerminator() bool {
	return len(c.content) > 0 && c.content[len(c.content)-1] == Terminator
}

// LineCount returns the number of lines. An empty chunk has no lines.
func (c Chunk) LineCount() int {
	if len(c.starts) == 0 {
		return 0
	}
	return len(c.starts) - 1
}

// Line returns the bytes of line i, including its terminator if it has one.
//
// For i out of range an empty view is returned, which cannot be told apart
// from an empty line; use LineAt for that. The view shares memory with the
// chunk and must not be modified.
func (c Chunk) Line(i int) []byte {
	line, _ := c.LineAt(i)
	return line
}

// LineAt is like Line, but reports whether i is a valid line index.
func (c Chunk) LineAt(i int) ([]byte, bool) {
	if i < 0 || i >= c.LineCount() {
		return []byte{}, false
	}
	start, end := c.starts[i], c.starts[i+1]
	return c.content[start:end:end], true
}

// FirstLine returns line 0.
func (c Chunk) FirstLine() []byte {
	return c.Line(0)
}

// LastLine returns the final line, or an empty view if the chunk has no lines.
func (c Chunk) LastLine() []byte {
	return c.Line(c.LineCount() - 1)
}
