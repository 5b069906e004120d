package chunk

import "strings"

// LineContent holds the two fragments of one logical line which is split
// across a chunk boundary. Both fragments borrow from chunk content.
type LineContent struct {
	Head []byte
	Tail []byte
}

// Join returns Head followed by Tail as a single string.
func (lc LineContent) Join() string {
	return Join(lc.Head, lc.Tail)
}

// Len returns the combined length of both fragments.
func (lc LineContent) Len() int {
	return len(lc.Head) + len(lc.Tail)
}

// Join concatenates head and tail.
func Join(head, tail []byte) string {
	var b strings.Builder
	b.Grow(len(head) + len(tail))
	b.Write(head)
	b.Write(tail)
	return b.String()
}

// Straddle returns the logical line spanning the boundary between prev and
// next. It reports false if prev is empty or ends with a terminator, in which
// case no line crosses the boundary.
func Straddle(prev, next Chunk) (LineContent, bool) {
	if prev.IsEmpty() || prev.EndsWithTerminator() {
		return LineContent{}, false
	}
	return LineContent{Head: prev.LastLine(), Tail: next.FirstLine()}, true
}
