package textbuf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCursorPrimitives(t *testing.T) {
	c := NewCursor(Pos(2, 3))
	c.Left(5, false)
	if c.Pos != Pos(2, 0) || c.HasSelection() {
		t.Errorf("expected Left to stop at column 0, is %s", c)
	}
	c.Right(4, true)
	c.Down(1, true)
	if c.Pos != Pos(3, 4) || c.SelectPos != Pos(2, 0) {
		t.Errorf("expected extending moves to keep the anchor, is %s", c)
	}
	from, to := c.Selection()
	if from != Pos(2, 0) || to != Pos(3, 4) {
		t.Errorf("unexpected selection %s…%s", from, to)
	}
	c.Up(7, true)
	from, to = c.Selection()
	if c.Pos != Pos(0, 4) || from != Pos(0, 4) || to != Pos(2, 0) {
		t.Errorf("expected selection to be normalized, is %s", c)
	}
	c.Collapse()
	if c.HasSelection() || c.SelectPos != Pos(0, 4) {
		t.Errorf("expected collapsed cursor at caret, is %s", c)
	}
	c.Position(Pos(1, 1), false)
	if c.String() != "[(1,1)]" {
		t.Errorf("unexpected cursor string %q", c.String())
	}
}

func TestCorrectCursors(t *testing.T) {
	doc := newDoc(t, "abc\nde\nfghij", 4)
	tests := []struct {
		pos      Position
		moveDown bool
		want     Position
	}{
		{Pos(1, 5), false, Pos(1, 2)},
		{Pos(1, 5), true, Pos(2, 0)},
		{Pos(2, 9), true, Pos(2, 5)},
		{Pos(9, 9), false, Pos(2, 5)},
		{Pos(0, -3), false, Pos(0, 0)},
		{Pos(-1, 4), false, Pos(0, 0)},
		{Pos(1, 2), true, Pos(1, 2)},
	}
	for _, tt := range tests {
		doc.ClearCursors()
		doc.AddCursor(NewCursor(tt.pos))
		doc.CorrectCursors(tt.moveDown)
		c, _ := doc.CursorAt(0)
		if c.Pos != tt.want || c.SelectPos != tt.want {
			t.Errorf("correct(%s, %v) = %s, want %s", tt.pos, tt.moveDown, c, tt.want)
		}
	}
	doc = newDoc(t, "a😀b", 64)
	doc.AddCursor(NewCursor(Pos(0, 3)))
	doc.CorrectCursors(false)
	if c, _ := doc.CursorAt(0); c.Pos != Pos(0, 1) {
		t.Errorf("expected column inside a rune to snap to its start, is %s", c)
	}
}

func TestHorizontalMovement(t *testing.T) {
	doc := newDoc(t, "a😀\r\ncd", 4)
	doc.AddCursor(NewCursor(Pos(0, 0)))
	var trail []Position
	for range 5 {
		doc.MoveRight(false)
		c, _ := doc.CursorAt(0)
		trail = append(trail, c.Pos)
	}
	want := []Position{Pos(0, 1), Pos(0, 5), Pos(1, 0), Pos(1, 1), Pos(1, 2)}
	if diff := cmp.Diff(want, trail); diff != "" {
		t.Errorf("MoveRight trail mismatch (-want +got):\n%s", diff)
	}
	doc.MoveRight(false)
	if c, _ := doc.CursorAt(0); c.Pos != Pos(1, 2) {
		t.Errorf("expected MoveRight at document end to stay, is %s", c)
	}
	trail = trail[:0]
	for range 5 {
		doc.MoveLeft(false)
		c, _ := doc.CursorAt(0)
		trail = append(trail, c.Pos)
	}
	want = []Position{Pos(1, 1), Pos(1, 0), Pos(0, 5), Pos(0, 1), Pos(0, 0)}
	if diff := cmp.Diff(want, trail); diff != "" {
		t.Errorf("MoveLeft trail mismatch (-want +got):\n%s", diff)
	}
	doc.MoveLeft(false)
	if c, _ := doc.CursorAt(0); c.Pos != Pos(0, 0) {
		t.Errorf("expected MoveLeft at document start to stay, is %s", c)
	}
}

func TestSelectionMovement(t *testing.T) {
	doc := newDoc(t, "abcdef", 4)
	doc.AddCursor(NewCursor(Pos(0, 1)))
	doc.MoveRight(true)
	doc.MoveRight(true)
	c, _ := doc.CursorAt(0)
	if c.SelectPos != Pos(0, 1) || c.Pos != Pos(0, 3) {
		t.Fatalf("expected selection (0,1)…(0,3), is %s", c)
	}
	doc.MoveLeft(false)
	if c, _ = doc.CursorAt(0); c.HasSelection() || c.Pos != Pos(0, 1) {
		t.Errorf("expected MoveLeft to collapse to selection start, is %s", c)
	}
	doc.MoveLineEnd(true)
	doc.MoveRight(false)
	if c, _ = doc.CursorAt(0); c.HasSelection() || c.Pos != Pos(0, 6) {
		t.Errorf("expected MoveRight to collapse to selection end, is %s", c)
	}
}

func TestVerticalMovement(t *testing.T) {
	doc := newDoc(t, "abcdef\nxy\nlong line", 4)
	doc.AddCursor(NewCursor(Pos(0, 5)))
	doc.MoveUp(false)
	if c, _ := doc.CursorAt(0); c.Pos != Pos(0, 5) {
		t.Errorf("expected MoveUp on first line to stay, is %s", c)
	}
	doc.MoveDown(false)
	if c, _ := doc.CursorAt(0); c.Pos != Pos(1, 2) || c.HasSelection() {
		t.Errorf("expected column to be clamped to (1,2), is %s", c)
	}
	doc.MoveDown(true)
	if c, _ := doc.CursorAt(0); c.Pos != Pos(2, 2) {
		t.Errorf("expected caret at (2,2), is %s", c)
	}
	doc.MoveDown(true)
	c, _ := doc.CursorAt(0)
	if c.Pos != Pos(2, 9) || c.SelectPos != Pos(1, 2) {
		t.Errorf("expected MoveDown on last line to select up to the line end, is %s", c)
	}
	doc.MoveLineEnd(false)
	if c, _ := doc.CursorAt(0); c.Pos != Pos(2, 9) {
		t.Errorf("expected caret at line end, is %s", c)
	}
	doc.MoveLineStart(false)
	if c, _ := doc.CursorAt(0); c.Pos != Pos(2, 0) {
		t.Errorf("expected caret at line start, is %s", c)
	}
}

func TestCursorsMerge(t *testing.T) {
	doc := newDoc(t, "abcdef", 4)
	doc.AddCursor(NewCursor(Pos(0, 1)))
	doc.AddCursor(NewCursor(Pos(0, 4)))
	doc.MoveLineStart(false)
	if doc.CursorCount() != 1 {
		t.Errorf("expected identical cursors to merge, have %v", doc.Cursors())
	}
}

func TestCursorManagement(t *testing.T) {
	doc := newDoc(t, "abc", 4)
	i := doc.AddCursor(NewCursor(Pos(0, 1)))
	if err := doc.SetCursor(i, NewCursor(Pos(0, 2))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c, err := doc.CursorAt(i); err != nil || c.Pos != Pos(0, 2) {
		t.Errorf("expected cursor #%d at (0,2), is %s, %v", i, c, err)
	}
	if err := doc.SetCursor(3, Cursor{}); !errors.Is(err, ErrNoSuchCursor) {
		t.Errorf("expected ErrNoSuchCursor, have %v", err)
	}
	if err := doc.RemoveCursor(i); err != nil || doc.CursorCount() != 0 {
		t.Errorf("expected cursor to be removed, have %d cursors, %v", doc.CursorCount(), err)
	}
	if err := doc.RemoveCursor(0); !errors.Is(err, ErrNoSuchCursor) {
		t.Errorf("expected ErrNoSuchCursor, have %v", err)
	}
	if _, err := doc.CursorAt(0); !errors.Is(err, ErrNoSuchCursor) {
		t.Errorf("expected ErrNoSuchCursor, have %v", err)
	}
}

func TestTypingMovesCaret(t *testing.T) {
	doc := newDoc(t, "ac\ndf", 4)
	doc.AddCursor(NewCursor(Pos(0, 1)))
	doc.AddCursor(NewCursor(Pos(1, 1)))
	if err := doc.AddChange(Insert("b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	apply(t, doc)
	doc.MoveRight(false)
	if doc.String() != "abc\ndbf" {
		t.Errorf("unexpected text %q", doc.String())
	}
	want := []Cursor{NewCursor(Pos(0, 2)), NewCursor(Pos(1, 2))}
	if diff := cmp.Diff(want, doc.Cursors()); diff != "" {
		t.Errorf("cursors mismatch (-want +got):\n%s", diff)
	}
}

func TestBackspaceAndRemap(t *testing.T) {
	doc := newDoc(t, "ab\r\ncd\nef", 4)
	doc.AddCursor(NewCursor(Pos(1, 0)))                 // behind CR-LF
	doc.AddCursor(NewCursor(Pos(2, 1)))                 // behind 'e'
	doc.AddCursor(NewSelection(Pos(0, 0), Pos(0, 1))) // selects 'a'
	offs := doc.CursorOffsets()
	doc.SelectBefore()
	if err := doc.AddChange(Delete()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := apply(t, doc)
	if doc.String() != "bcd\nf" {
		t.Fatalf("unexpected text %q", doc.String())
	}
	doc.RemapCursors(offs, c)
	want := []Cursor{NewCursor(Pos(0, 1)), NewCursor(Pos(1, 0)), NewCursor(Pos(0, 0))}
	if diff := cmp.Diff(want, doc.Cursors()); diff != "" {
		t.Errorf("cursors mismatch (-want +got):\n%s", diff)
	}
}

func TestRemapCursorsAfterTyping(t *testing.T) {
	doc := newDoc(t, "abcdef", 4)
	doc.AddCursor(NewCursor(Pos(0, 1)))
	doc.AddCursor(NewSelection(Pos(0, 3), Pos(0, 5)))
	offs := doc.CursorOffsets()
	if err := doc.AddChange(Insert("XY")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := apply(t, doc)
	if doc.String() != "aXYbcXYf" {
		t.Fatalf("unexpected text %q", doc.String())
	}
	doc.RemapCursors(offs, c)
	want := []Cursor{NewCursor(Pos(0, 3)), NewCursor(Pos(0, 7))}
	if diff := cmp.Diff(want, doc.Cursors()); diff != "" {
		t.Errorf("cursors mismatch (-want +got):\n%s", diff)
	}
}
