package chunk

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewBuildsLineStarts(t *testing.T) {
	tests := []struct {
		text   string
		starts []int
		lines  []string
		ends   bool
	}{
		{"", []int{0}, nil, false},
		{"abc", []int{0, 3}, []string{"abc"}, false},
		{"abc\n", []int{0, 4}, []string{"abc\n"}, true},
		{"a\nb", []int{0, 2, 3}, []string{"a\n", "b"}, false},
		{"\n\n", []int{0, 1, 2}, []string{"\n", "\n"}, true},
		{"a\r\nb", []int{0, 3, 4}, []string{"a\r\n", "b"}, false},
	}
	for _, tt := range tests {
		c := New(tt.text)
		starts := c.LineStarts()
		if len(starts) != len(tt.starts) {
			t.Fatalf("%q: line starts = %v, want %v", tt.text, starts, tt.starts)
		}
		for i := range starts {
			if starts[i] != tt.starts[i] {
				t.Fatalf("%q: line starts = %v, want %v", tt.text, starts, tt.starts)
			}
		}
		if c.LineCount() != len(tt.lines) {
			t.Errorf("%q: line count = %d, want %d", tt.text, c.LineCount(), len(tt.lines))
		}
		for i, want := range tt.lines {
			if got := string(c.Line(i)); got != want {
				t.Errorf("%q: line %d = %q, want %q", tt.text, i, got, want)
			}
		}
		if c.EndsWithTerminator() != tt.ends {
			t.Errorf("%q: ends with terminator = %v, want %v", tt.text, c.EndsWithTerminator(), tt.ends)
		}
	}
}

func TestLineStartsInvariants(t *testing.T) {
	texts := []string{"", "x", "\n", "hello\nworld\n", strings.Repeat("ab\ncd", 20), "\n\nx\n\n"}
	for _, text := range texts {
		c := New(text)
		starts := c.LineStarts()
		if starts[0] != 0 {
			t.Errorf("%q: first start is %d", text, starts[0])
		}
		if starts[len(starts)-1] != len(text) {
			t.Errorf("%q: last start is %d, want %d", text, starts[len(starts)-1], len(text))
		}
		for i := 1; i < len(starts); i++ {
			if starts[i] < starts[i-1] {
				t.Errorf("%q: line starts not sorted: %v", text, starts)
			}
		}
		if c.LineCount() != len(starts)-1 {
			t.Errorf("%q: line count %d does not match %d starts", text, c.LineCount(), len(starts))
		}
		var buf bytes.Buffer
		for i := 0; i < c.LineCount(); i++ {
			buf.Write(c.Line(i))
		}
		if buf.String() != text {
			t.Errorf("lines do not reproduce content: %q != %q", buf.String(), text)
		}
	}
}

func TestLineOutOfRange(t *testing.T) {
	c := New("a\nb")
	for _, i := range []int{-1, 2, 10} {
		if l := c.Line(i); len(l) != 0 {
			t.Errorf("line %d = %q, want empty", i, l)
		}
		if _, ok := c.LineAt(i); ok {
			t.Errorf("LineAt(%d) reported a valid line", i)
		}
	}
	if l, ok := c.LineAt(1); !ok || string(l) != "b" {
		t.Errorf("LineAt(1) = %q/%v, want \"b\"/true", l, ok)
	}
}

func TestFirstAndLastLine(t *testing.T) {
	c := New("one\ntwo\nthree")
	if string(c.FirstLine()) != "one\n" {
		t.Errorf("first line = %q", c.FirstLine())
	}
	if string(c.LastLine()) != "three" {
		t.Errorf("last line = %q", c.LastLine())
	}
	empty := New("")
	if len(empty.FirstLine()) != 0 || len(empty.LastLine()) != 0 {
		t.Errorf("expected empty first/last line for empty chunk")
	}
	var zero Chunk
	if zero.LineCount() != 0 || len(zero.LastLine()) != 0 || zero.EndsWithTerminator() {
		t.Errorf("zero chunk should behave like an empty chunk")
	}
}

func TestLineViewCannotGrowIntoNextLine(t *testing.T) {
	c := New("ab\ncd")
	l := c.Line(0)
	_ = append(l, 'X')
	if c.String() != "ab\ncd" {
		t.Fatalf("appending to a line view modified the chunk: %q", c.String())
	}
}

func TestNewBytesCopiesInput(t *testing.T) {
	src := []byte("ab\n")
	c := NewBytes(src)
	src[0] = 'X'
	if c.String() != "ab\n" {
		t.Fatalf("chunk should not alias source bytes, got %q", c.String())
	}
	b := c.Bytes()
	b[1] = 'Y'
	if c.String() != "ab\n" {
		t.Fatalf("chunk should not alias returned bytes, got %q", c.String())
	}
}
