package chunk

import (
	"errors"
	"strings"
	"testing"
)

func stage(t *testing.T, p *Pending, edits ...Edit) {
	t.Helper()
	for _, e := range edits {
		if _, err := p.Stage(e); err != nil {
			t.Fatalf("unexpected Stage error: %v", err)
		}
	}
}

func TestCalculateStagedLeavesContentUntouched(t *testing.T) {
	seg := NewSegment("ABCD")
	info := Recompute(&seg, 4, Pos(0, 4))
	p := NewPending()
	stage(t, p, Edit{Offset: 5, Segment: 1, Op: Insert, Text: "X"})
	if err := seg.CalculateStaged(p, 1, info); err != nil {
		t.Fatalf("unexpected CalculateStaged error: %v", err)
	}
	if seg.String() != "ABCD" {
		t.Fatalf("committed content changed before commit: %q", seg.String())
	}
	if seg.Staged() != "AXBCD" {
		t.Fatalf("unexpected staged content: %q", seg.Staged())
	}
	if !p.IsEmpty() {
		t.Fatalf("expected edit to be consumed, %d pending", p.Len())
	}
	seg.Commit()
	if seg.String() != "AXBCD" || seg.IsDirty() || seg.Staged() != "" {
		t.Fatalf("unexpected state after commit: %q dirty=%v", seg.String(), seg.IsDirty())
	}
}

func TestCommitWithoutStagingIsNoop(t *testing.T) {
	seg := NewSegment("hello")
	seg.Commit()
	seg.Commit()
	if seg.String() != "hello" {
		t.Fatalf("commit without staging changed content: %q", seg.String())
	}
}

func TestCalculateStagedDeleteAndAppend(t *testing.T) {
	seg := NewSegment("ABCD")
	info := Recompute(&seg, 0, Position{})
	p := NewPending()
	stage(t, p,
		Edit{Offset: 0, Segment: 0, Op: Delete, Length: 0}, // one rune
		Edit{Offset: 2, Segment: 0, Op: Delete, Length: 2},
		Edit{Offset: 4, Segment: 0, Op: Insert, Text: "!"},
	)
	if err := seg.CalculateStaged(p, 0, info); err != nil {
		t.Fatalf("unexpected CalculateStaged error: %v", err)
	}
	if seg.Staged() != "B!" {
		t.Fatalf("unexpected staged content: %q", seg.Staged())
	}
}

func TestCalculateStagedDeletesWholeRune(t *testing.T) {
	seg := NewSegment("a😀b")
	info := Recompute(&seg, 0, Position{})
	p := NewPending()
	stage(t, p, Edit{Offset: 1, Segment: 0, Op: Delete})
	if err := seg.CalculateStaged(p, 0, info); err != nil {
		t.Fatalf("unexpected CalculateStaged error: %v", err)
	}
	if seg.Staged() != "ab" {
		t.Fatalf("unexpected staged content: %q", seg.Staged())
	}
}

func TestCalculateStagedSameOffsetComposes(t *testing.T) {
	cases := []struct {
		name  string
		edits []Edit
		want  string
	}{
		{"insert then delete", []Edit{
			{Offset: 1, Op: Insert, Text: "xy"},
			{Offset: 1, Op: Delete, Length: 2},
		}, "ABCD"},
		{"delete then insert", []Edit{
			{Offset: 1, Op: Delete, Length: 2},
			{Offset: 1, Op: Insert, Text: "xy"},
		}, "AxyD"},
		{"two inserts", []Edit{
			{Offset: 2, Op: Insert, Text: "a"},
			{Offset: 2, Op: Insert, Text: "b"},
		}, "ABbaCD"},
		{"insert then longer delete", []Edit{
			{Offset: 0, Op: Insert, Text: "x"},
			{Offset: 0, Op: Delete, Length: 2},
		}, "BCD"},
	}
	for _, tc := range cases {
		seg := NewSegment("ABCD")
		info := Recompute(&seg, 0, Position{})
		p := NewPending()
		stage(t, p, tc.edits...)
		if err := seg.CalculateStaged(p, 0, info); err != nil {
			t.Fatalf("%s: unexpected CalculateStaged error: %v", tc.name, err)
		}
		if seg.Staged() != tc.want {
			t.Errorf("%s: staged=%q want=%q", tc.name, seg.Staged(), tc.want)
		}
	}
}

func TestCalculateStagedDropsSubsumedEdits(t *testing.T) {
	seg := NewSegment("ABCDEF")
	info := Recompute(&seg, 0, Position{})
	p := NewPending()
	stage(t, p,
		Edit{Offset: 1, Op: Delete, Length: 3},
		Edit{Offset: 2, Op: Insert, Text: "x"},
		Edit{Offset: 4, Op: Insert, Text: "y"},
	)
	if err := seg.CalculateStaged(p, 0, info); err != nil {
		t.Fatalf("unexpected CalculateStaged error: %v", err)
	}
	if seg.Staged() != "AyEF" {
		t.Fatalf("unexpected staged content: %q", seg.Staged())
	}
}

func TestCalculateStagedRejectsStaleIndex(t *testing.T) {
	seg := NewSegment("ABCD")
	info := Recompute(&seg, 0, Position{})
	p := NewPending()
	stage(t, p, Edit{Offset: 9, Op: Insert, Text: "x"})
	err := seg.CalculateStaged(p, 0, info)
	if !errors.Is(err, ErrSegmentIndexStale) {
		t.Fatalf("expected ErrSegmentIndexStale, got %v", err)
	}
	if seg.IsDirty() {
		t.Fatalf("segment must stay clean after a stale index")
	}
	other := NewSegment("AB")
	err = other.CalculateStaged(NewPending(), 0, info)
	if !errors.Is(err, ErrSegmentIndexStale) {
		t.Fatalf("expected ErrSegmentIndexStale for mismatched info, got %v", err)
	}
}

func TestSplitPoint(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"ABCDEFGH", 4},
		{"XEFGH", 2},
		{"a\r\nb", 1},
		{"😀😀", 4},
		{"ab😀", 2},
		{"a", 0},
		{"😀", 0},
	}
	for _, tc := range cases {
		if got := NewSegment(tc.text).SplitPoint(); got != tc.want {
			t.Errorf("SplitPoint(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestSplit(t *testing.T) {
	seg := NewSegment("hello world")
	left, right, err := seg.Split(5)
	if err != nil {
		t.Fatalf("unexpected Split error: %v", err)
	}
	if left.String() != "hello" || right.String() != " world" {
		t.Fatalf("unexpected split result: %q | %q", left.String(), right.String())
	}
	if _, _, err = seg.Split(12); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestMoveTrailingCR(t *testing.T) {
	a, b := NewSegment("ab\r"), NewSegment("\ncd")
	if !a.MoveTrailingCR(&b) {
		t.Fatalf("expected CR to move")
	}
	if a.String() != "ab" || b.String() != "\r\ncd" {
		t.Fatalf("unexpected segments: %q | %q", a.String(), b.String())
	}
	if a.MoveTrailingCR(&b) {
		t.Fatalf("expected no second move")
	}
}

func TestNewSegmentBytesCopiesInput(t *testing.T) {
	src := []byte("abc")
	seg := NewSegmentBytes(src)
	src[0] = 'X'
	if seg.String() != "abc" {
		t.Fatalf("segment should not alias source bytes, got %q", seg.String())
	}
	b := seg.Bytes()
	b[1] = 'Y'
	if seg.String() != "abc" {
		t.Fatalf("segment should not alias returned bytes, got %q", seg.String())
	}
	if strings.Repeat("a", MinSegmentSize) != "aaaa" {
		t.Fatalf("unexpected MinSegmentSize %d", MinSegmentSize)
	}
}

func TestCalculateStagedRecordsAppliedEdits(t *testing.T) {
	seg := NewSegment("ABCDEFGH")
	info := Recompute(&seg, 10, Pos(0, 10))
	p := NewPending()
	stage(t, p,
		Edit{Offset: 11, Segment: 0, Op: Insert, Text: "xy"},
		Edit{Offset: 13, Length: 3, Segment: 0, Op: Delete},
		Edit{Offset: 13, Segment: 0, Op: Insert, Text: "z"},
		Edit{Offset: 18, Segment: 0, Op: Insert, Text: "!"},
	)
	if err := seg.CalculateStaged(p, 0, info); err != nil {
		t.Fatalf("unexpected CalculateStaged error: %v", err)
	}
	if seg.Staged() != "AxyBCzGH!" {
		t.Fatalf("unexpected staged content: %q", seg.Staged())
	}
	want := []Applied{
		{Offset: 11, Inserted: 2},
		{Offset: 13, Removed: 3, Inserted: 1},
		{Offset: 18, Inserted: 1},
	}
	got := seg.Applied()
	if len(got) != len(want) {
		t.Fatalf("expected %d applied edits, have %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("applied[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	seg.Commit()
	if len(seg.Applied()) != 0 {
		t.Errorf("expected applied edits to be cleared by commit")
	}
}
