package textbuf

import "fmt"

// Cursor is a caret position together with the anchor of a selection.
//
// A cursor without selection has SelectPos == Pos. Cursor movement adjusts the
// fields only; it knows nothing about line lengths. Keeping a cursor on valid
// positions is up to Document.CorrectCursors.
type Cursor struct {
	Pos       Position // caret
	SelectPos Position // selection anchor
}

// NewCursor creates a cursor at p without selection.
func NewCursor(p Position) Cursor {
	return Cursor{Pos: p, SelectPos: p}
}

// NewSelection creates a cursor selecting the range between anchor and caret.
func NewSelection(anchor, caret Position) Cursor {
	return Cursor{Pos: caret, SelectPos: anchor}
}

// HasSelection reports whether the cursor selects a non-empty range.
func (c Cursor) HasSelection() bool {
	return c.Pos != c.SelectPos
}

// Selection returns the selected range in document order.
func (c Cursor) Selection() (from, to Position) {
	if c.SelectPos.Before(c.Pos) {
		return c.SelectPos, c.Pos
	}
	return c.Pos, c.SelectPos
}

// Collapse drops the selection, keeping the caret.
func (c *Cursor) Collapse() {
	c.SelectPos = c.Pos
}

// Left moves the caret n columns to the left, stopping at column 0. With
// extend set, the selection anchor stays in place.
func (c *Cursor) Left(n int, extend bool) {
	c.Pos.Col = max(c.Pos.Col-n, 0)
	c.follow(extend)
}

// Right moves the caret n columns to the right.
func (c *Cursor) Right(n int, extend bool) {
	c.Pos.Col += n
	c.follow(extend)
}

// Up moves the caret n lines up, stopping at line 0.
func (c *Cursor) Up(n int, extend bool) {
	c.Pos.Line = max(c.Pos.Line-n, 0)
	c.follow(extend)
}

// Down moves the caret n lines down.
func (c *Cursor) Down(n int, extend bool) {
	c.Pos.Line += n
	c.follow(extend)
}

// Position moves the caret to p.
func (c *Cursor) Position(p Position, extend bool) {
	c.Pos = p
	c.follow(extend)
}

func (c *Cursor) follow(extend bool) {
	if !extend {
		c.SelectPos = c.Pos
	}
}

func (c Cursor) String() string {
	if c.HasSelection() {
		return fmt.Sprintf("[%s…%s]", c.SelectPos, c.Pos)
	}
	return fmt.Sprintf("[%s]", c.Pos)
}
