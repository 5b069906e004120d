package chunk

import "testing"

var deltaTexts = []string{"", "a", "abc\n", "a\nb", "\n", "\n\n", "ab\ncd\n", "\nxy", "x\n\ny"}

var deltaStarts = []Position{{0, 0}, {0, 5}, {3, 0}, {7, 11}}

func TestDeltasMatchCalculators(t *testing.T) {
	for _, text := range deltaTexts {
		c := New(text)
		for _, p := range deltaStarts {
			if got, want := c.ForwardDelta().Apply(p), c.EndPosition(p); got != want {
				t.Errorf("%q forward from %v: delta gives %v, want %v", text, p, got, want)
			}
			if got, want := c.BackwardDelta().Apply(p), c.BackwardEnd(p); got != want {
				t.Errorf("%q backward from %v: delta gives %v, want %v", text, p, got, want)
			}
		}
	}
}

func TestMonoidComposesApply(t *testing.T) {
	var m Monoid
	for _, a := range deltaTexts {
		for _, b := range deltaTexts {
			ca, cb := New(a), New(b)
			sum := m.Add(ca.ForwardDelta(), cb.ForwardDelta())
			for _, p := range deltaStarts {
				want := cb.EndPosition(ca.EndPosition(p))
				if got := sum.Apply(p); got != want {
					t.Errorf("%q+%q from %v: got %v, want %v", a, b, p, got, want)
				}
			}
		}
	}
}

func TestMonoidIsAssociative(t *testing.T) {
	var m Monoid
	ds := []Delta{m.Zero(), {0, 3}, {2, 0}, {1, 4}, {0, 1}}
	for _, a := range ds {
		for _, b := range ds {
			for _, c := range ds {
				if l, r := m.Add(m.Add(a, b), c), m.Add(a, m.Add(b, c)); l != r {
					t.Errorf("(%v+%v)+%v = %v, but %v+(%v+%v) = %v", a, b, c, l, a, b, c, r)
				}
			}
		}
		if m.Add(m.Zero(), a) != a || m.Add(a, m.Zero()) != a {
			t.Errorf("zero is not neutral for %v", a)
		}
	}
}
