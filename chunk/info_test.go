package chunk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecomputeLineTable(t *testing.T) {
	seg := NewSegment("ab\ncd\r\nef")
	info := Recompute(&seg, 0, Position{})
	want := []Line{
		{Start: 0, End: 2, NewlineWidth: 1},
		{Start: 3, End: 5, NewlineWidth: 2},
		{Start: 7, End: 9, NewlineWidth: 0},
	}
	if diff := cmp.Diff(want, info.Lines); diff != "" {
		t.Fatalf("unexpected line table (-want +got):\n%s", diff)
	}
	if info.Start != 0 || info.End != 9 {
		t.Fatalf("unexpected offset range [%d,%d)", info.Start, info.End)
	}
	if info.EndPos != Pos(2, 2) {
		t.Fatalf("unexpected end position %v", info.EndPos)
	}
}

func TestRecomputeContinuesPrecedingSegment(t *testing.T) {
	seg := NewSegment("CD\nE")
	info := Recompute(&seg, 2, Pos(0, 2))
	if info.End != 6 || info.EndPos != Pos(1, 1) {
		t.Fatalf("unexpected end: %d %v", info.End, info.EndPos)
	}
	lo, hi := info.ColumnRange(0)
	if lo != 2 || hi != 5 {
		t.Fatalf("unexpected column range of first line: [%d,%d)", lo, hi)
	}
	if off := info.Offset(0, 3); off != 3 {
		t.Fatalf("Offset(0,3) = %d, want 3", off)
	}
	if off := info.Offset(1, 0); off != 5 {
		t.Fatalf("Offset(1,0) = %d, want 5", off)
	}
	if info.LineNumber(1) != 1 {
		t.Fatalf("unexpected line number %d", info.LineNumber(1))
	}
}

func TestRecomputeEmptyAndTrailingNewline(t *testing.T) {
	empty := NewSegment("")
	info := Recompute(&empty, 0, Position{})
	if info.LineCount() != 1 || info.EndPos != Pos(0, 0) {
		t.Fatalf("unexpected index of empty segment: %+v", info)
	}
	if !info.Matches(0, 0) || info.Matches(0, 1) {
		t.Fatalf("zero-width line must be addressable at its first column only")
	}
	seg := NewSegment("ab\n")
	info = Recompute(&seg, 0, Position{})
	if info.LineCount() != 2 || info.EndPos != Pos(1, 0) {
		t.Fatalf("unexpected index of terminated segment: %+v", info)
	}
	if !info.Matches(1, 0) {
		t.Fatalf("expected trailing empty line to be addressable")
	}
}

func TestColumnRangeIncludesTerminator(t *testing.T) {
	seg := NewSegment("ab\ncd")
	info := Recompute(&seg, 0, Position{})
	if !info.Matches(0, 2) {
		t.Fatalf("caret at end of terminated line must be addressable")
	}
	if info.Matches(0, 3) {
		t.Fatalf("column past terminator must not be addressable")
	}
	if info.Matches(1, 2) {
		t.Fatalf("column at end of unterminated segment line belongs to the next segment")
	}
}

func TestLocate(t *testing.T) {
	seg := NewSegment("ab\ncd\r\nef")
	info := Recompute(&seg, 10, Pos(3, 0))
	cases := []struct {
		off, entry, col int
		ok              bool
	}{
		{10, 0, 0, true},
		{12, 0, 2, true},
		{13, 1, 0, true},
		{15, 1, 2, true},
		{16, 1, 2, true},
		{19, 2, 2, true},
		{20, 0, 0, false},
		{9, 0, 0, false},
	}
	for _, tc := range cases {
		entry, col, ok := info.Locate(tc.off)
		if ok != tc.ok || (ok && (entry != tc.entry || col != tc.col)) {
			t.Errorf("Locate(%d) = (%d,%d,%v), want (%d,%d,%v)",
				tc.off, entry, col, ok, tc.entry, tc.col, tc.ok)
		}
	}
}
