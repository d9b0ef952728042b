package textbuf

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// AddCursor registers a cursor with doc and returns its number.
func (doc *Document) AddCursor(c Cursor) int {
	doc.cursors = append(doc.cursors, c)
	return len(doc.cursors) - 1
}

// RemoveCursor unregisters cursor number i. Cursors behind i are renumbered.
func (doc *Document) RemoveCursor(i int) error {
	if i < 0 || i >= len(doc.cursors) {
		return fmt.Errorf("%w: #%d", ErrNoSuchCursor, i)
	}
	doc.cursors = slices.Delete(doc.cursors, i, i+1)
	return nil
}

// SetCursor replaces cursor number i.
func (doc *Document) SetCursor(i int, c Cursor) error {
	if i < 0 || i >= len(doc.cursors) {
		return fmt.Errorf("%w: #%d", ErrNoSuchCursor, i)
	}
	doc.cursors[i] = c
	return nil
}

// CursorAt returns cursor number i.
func (doc *Document) CursorAt(i int) (Cursor, error) {
	if i < 0 || i >= len(doc.cursors) {
		return Cursor{}, fmt.Errorf("%w: #%d", ErrNoSuchCursor, i)
	}
	return doc.cursors[i], nil
}

// Cursors returns a copy of all cursors.
func (doc *Document) Cursors() []Cursor {
	return slices.Clone(doc.cursors)
}

// CursorCount returns the number of cursors.
func (doc *Document) CursorCount() int {
	return len(doc.cursors)
}

// ClearCursors unregisters all cursors.
func (doc *Document) ClearCursors() {
	doc.cursors = doc.cursors[:0]
}

// CorrectCursors moves every caret and selection anchor onto a valid position.
//
// Lines beyond the last line are clamped to the end of the last line. A column
// beyond the width of its line is clamped to the line width, or, with moveDown
// set, wraps to the start of the next line. Columns never end up inside a
// UTF-8 sequence.
//
// Collaborators moving cursors by (line, column) arithmetic call it after
// each move; the widget uses the clamping mode. The wrapping mode serves
// clients letting a caret run past a line end, e.g. when typing in overwrite
// mode.
func (doc *Document) CorrectCursors(moveDown bool) {
	for i := range doc.cursors {
		c := &doc.cursors[i]
		c.Pos = doc.correct(c.Pos, moveDown)
		c.SelectPos = doc.correct(c.SelectPos, moveDown)
	}
}

func (doc *Document) correct(p Position, moveDown bool) Position {
	last := doc.LineCount() - 1
	switch {
	case p.Line < 0:
		p = Pos(0, 0)
	case p.Line > last:
		p = Pos(last, doc.Line(last).Width)
	}
	p.Col = max(p.Col, 0)
	li := doc.Line(p.Line)
	if p.Col > li.Width {
		if moveDown && p.Line < last {
			return Pos(p.Line+1, 0)
		}
		p.Col = li.Width
	}
	for off := li.Start + p.Col; p.Col > 0; off-- {
		if b, ok := doc.byteAt(off); !ok || utf8.RuneStart(b) {
			break
		}
		p.Col--
	}
	return p
}

// MoveLeft moves every caret one character to the left. At column 0 the caret
// moves to the end of the previous line. Without extend, a cursor holding a
// selection collapses to the start of the selection.
func (doc *Document) MoveLeft(extend bool) {
	doc.moveEach(func(c *Cursor) {
		if !extend && c.HasSelection() {
			from, _ := c.Selection()
			c.Position(from, false)
			return
		}
		off, err := doc.Offset(doc.correct(c.Pos, false))
		if err != nil || off == 0 {
			return
		}
		c.Position(doc.mustPos(off-doc.runeWidthBefore(off)), extend)
	})
}

// MoveRight moves every caret one character to the right. At the end of a
// line the caret moves to the start of the next line. Without extend, a cursor
// holding a selection collapses to the end of the selection.
func (doc *Document) MoveRight(extend bool) {
	doc.moveEach(func(c *Cursor) {
		if !extend && c.HasSelection() {
			_, to := c.Selection()
			c.Position(to, false)
			return
		}
		off, err := doc.Offset(doc.correct(c.Pos, false))
		if err != nil || off == doc.Len() {
			return
		}
		c.Position(doc.mustPos(off+doc.runeWidthAt(off)), extend)
	})
}

// MoveUp moves every caret one line up, clamping its column to the line width.
func (doc *Document) MoveUp(extend bool) {
	doc.moveEach(func(c *Cursor) {
		c.Up(1, extend)
		c.Pos = doc.correct(c.Pos, false)
		if !extend {
			c.Collapse()
		}
	})
}

// MoveDown moves every caret one line down, clamping its column to the line
// width.
func (doc *Document) MoveDown(extend bool) {
	doc.moveEach(func(c *Cursor) {
		c.Down(1, extend)
		c.Pos = doc.correct(c.Pos, false)
		if !extend {
			c.Collapse()
		}
	})
}

// MoveLineStart moves every caret to column 0 of its line.
func (doc *Document) MoveLineStart(extend bool) {
	doc.moveEach(func(c *Cursor) {
		c.Left(c.Pos.Col, extend)
	})
}

// MoveLineEnd moves every caret behind the last character of its line.
func (doc *Document) MoveLineEnd(extend bool) {
	doc.moveEach(func(c *Cursor) {
		p := doc.correct(c.Pos, false)
		c.Position(Pos(p.Line, doc.Line(p.Line).Width), extend)
	})
}

// MoveTo moves every caret to the position of offset off, as computed by f
// from the caret's current offset.
func (doc *Document) MoveTo(f func(off int) int, extend bool) {
	doc.moveEach(func(c *Cursor) {
		off, err := doc.Offset(doc.correct(c.Pos, false))
		if err != nil {
			return
		}
		off = min(max(f(off), 0), doc.Len())
		c.Position(doc.correct(doc.mustPos(off), false), extend)
	})
}

// moveEach applies move to every cursor and merges cursors which ended up
// identical.
func (doc *Document) moveEach(move func(c *Cursor)) {
	for i := range doc.cursors {
		move(&doc.cursors[i])
	}
	doc.mergeCursors()
}

func (doc *Document) mergeCursors() {
	if len(doc.cursors) < 2 {
		return
	}
	merged := doc.cursors[:1]
	for _, c := range doc.cursors[1:] {
		if !slices.Contains(merged, c) {
			merged = append(merged, c)
		}
	}
	doc.cursors = merged
}

func (doc *Document) mustPos(off int) Position {
	p, err := doc.PosFromOffset(off)
	assert(err == nil, "mustPos: offset out of range")
	return p
}

// SelectBefore extends every cursor without a selection over the character
// in front of its caret. Cursors holding a selection are left unchanged.
// Followed by a Delete change, this implements backspace.
func (doc *Document) SelectBefore() {
	doc.moveEach(func(c *Cursor) {
		if c.HasSelection() {
			return
		}
		off, err := doc.Offset(doc.correct(c.Pos, false))
		if err != nil || off == 0 {
			return
		}
		c.Position(doc.mustPos(off-doc.runeWidthBefore(off)), true)
	})
}

// CursorOffsets returns the caret and anchor offsets of every cursor, in
// this order.
func (doc *Document) CursorOffsets() [][2]int {
	offs := make([][2]int, len(doc.cursors))
	for i, c := range doc.cursors {
		caret, _ := doc.Offset(doc.correct(c.Pos, false))
		anchor, _ := doc.Offset(doc.correct(c.SelectPos, false))
		offs[i] = [2]int{caret, anchor}
	}
	return offs
}

// RemapCursors places the cursors at offsets offs, taken with CursorOffsets
// before the commit, mapped through the edits of commit c. Cursors which end
// up identical are merged.
func (doc *Document) RemapCursors(offs [][2]int, c Commit) {
	for i := range min(len(offs), len(doc.cursors)) {
		caret := min(c.MapOffset(offs[i][0]), doc.Len())
		anchor := min(c.MapOffset(offs[i][1]), doc.Len())
		doc.cursors[i] = NewSelection(doc.mustPos(anchor), doc.mustPos(caret))
	}
	doc.mergeCursors()
}
