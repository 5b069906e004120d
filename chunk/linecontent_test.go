package chunk

import "testing"

func TestJoinHeadThenTail(t *testing.T) {
	s := "hello, world"
	for i := 0; i <= len(s); i++ {
		lc := LineContent{Head: []byte(s[:i]), Tail: []byte(s[i:])}
		if got := lc.Join(); got != s {
			t.Errorf("split at %d: joined %q, want %q", i, got, s)
		}
		if lc.Len() != len(s) {
			t.Errorf("split at %d: len %d", i, lc.Len())
		}
	}
	if Join(nil, nil) != "" {
		t.Errorf("joining empty fragments should be empty")
	}
}

func TestStraddle(t *testing.T) {
	prev, next := New("first\nsec"), New("ond\nthird")
	lc, ok := Straddle(prev, next)
	if !ok {
		t.Fatalf("expected a line to straddle the boundary")
	}
	if lc.Join() != "second\n" {
		t.Errorf("straddling line = %q", lc.Join())
	}
	if _, ok := Straddle(New("closed\n"), next); ok {
		t.Errorf("terminated chunk must not straddle")
	}
	if _, ok := Straddle(New(""), next); ok {
		t.Errorf("empty chunk must not straddle")
	}
}
