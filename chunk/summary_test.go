package chunk

import "testing"

func TestSegmentSummaryCounts(t *testing.T) {
	s := NewSegment("a\n😀b").Summary()
	if s.Bytes != 7 || s.Chars != 4 || s.Lines != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestSummaryMonoid(t *testing.T) {
	a := Summary{Bytes: 5, Chars: 3, Lines: 1}
	b := Summary{Bytes: 4, Chars: 2, Lines: 0}
	m := Monoid{}
	c := m.Add(a, b)
	if c.Bytes != 9 || c.Chars != 5 || c.Lines != 1 {
		t.Fatalf("unexpected monoid add result: %+v", c)
	}
	if z := m.Zero(); z != (Summary{}) {
		t.Fatalf("unexpected monoid zero value: %+v", z)
	}
}
