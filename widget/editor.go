package widget

import (
	"github.com/npillmayer/textbuf"
	"github.com/npillmayer/textbuf/display"
	"github.com/npillmayer/textbuf/metrics"
)

// Editor is a text editing widget. It owns the cursors of its document.
type Editor struct {
	doc           *textbuf.Document
	view          display.View
	width, height int
}

// New creates an editor for doc with a single cursor at the start of the
// document, if doc has no cursors yet.
func New(doc *textbuf.Document, view display.View) *Editor {
	if doc.CursorCount() == 0 {
		doc.AddCursor(textbuf.NewCursor(textbuf.Pos(0, 0)))
	}
	return &Editor{doc: doc, view: view}
}

// Document returns the document edited.
func (e *Editor) Document() *textbuf.Document {
	return e.doc
}

// View returns the viewport of the editor.
func (e *Editor) View() *display.View {
	return &e.view
}

// Render draws the visible part of the document onto s.
func (e *Editor) Render(s display.Surface) {
	e.width, e.height = s.Size()
	e.view.Render(e.doc, s)
}

// Handle consumes an event. It returns false for events the editor does not
// handle. An error is returned if an edit has been rejected; the document
// then keeps its last committed state.
func (e *Editor) Handle(ev Event) (bool, error) {
	tracer().Debugf("editor: %s", ev)
	handled, err := true, error(nil)
	switch ev.Kind {
	case KeyEvent:
		handled, err = e.key(ev)
	case PasteEvent:
		err = e.edit(textbuf.Insert(ev.Text))
	case ClickEvent:
		e.click(ev)
	case ResizeEvent:
		e.width, e.height = ev.X, ev.Y
	default:
		handled = false
	}
	if handled {
		e.scroll()
	}
	return handled, err
}

func (e *Editor) key(ev Event) (bool, error) {
	extend := ev.Mod.Has(ModShift)
	word := ev.Mod.Has(ModCtrl) || ev.Mod.Has(ModAlt)
	doc := e.doc
	switch ev.Key {
	case KeyRune:
		if ev.Mod.Has(ModCtrl) {
			return e.command(ev.Rune), nil
		}
		return true, e.edit(textbuf.Insert(string(ev.Rune)))
	case KeyEnter:
		return true, e.edit(textbuf.Insert("\n"))
	case KeyTab:
		return true, e.edit(textbuf.Insert("\t"))
	case KeyBackspace:
		doc.SelectBefore()
		return true, e.editSelections(textbuf.Delete())
	case KeyDelete:
		return true, e.edit(textbuf.Delete())
	case KeyLeft:
		if word {
			doc.MoveTo(func(off int) int { return metrics.PrevWordStart(doc, off) }, extend)
		} else {
			doc.MoveLeft(extend)
		}
	case KeyRight:
		if word {
			doc.MoveTo(func(off int) int { return metrics.NextWordEnd(doc, off) }, extend)
		} else {
			doc.MoveRight(extend)
		}
	case KeyUp:
		if ev.Mod.Has(ModAlt) {
			e.addCursor(-1)
		} else {
			doc.MoveUp(extend)
		}
	case KeyDown:
		if ev.Mod.Has(ModAlt) {
			e.addCursor(1)
		} else {
			doc.MoveDown(extend)
		}
	case KeyHome:
		doc.MoveLineStart(extend)
	case KeyEnd:
		doc.MoveLineEnd(extend)
	case KeyEscape:
		primary, err := doc.CursorAt(0)
		if err != nil {
			return true, nil
		}
		primary.Collapse()
		doc.ClearCursors()
		doc.AddCursor(primary)
	default:
		return false, nil
	}
	return true, nil
}

// command handles Ctrl-key combinations.
func (e *Editor) command(r rune) bool {
	switch r {
	case 'a': // select all
		last := e.doc.LineCount() - 1
		e.doc.ClearCursors()
		e.doc.AddCursor(textbuf.NewSelection(textbuf.Pos(0, 0),
			textbuf.Pos(last, e.doc.Line(last).Width)))
		return true
	}
	return false
}

// edit stages ch for every cursor, commits and moves the cursors behind the
// edited text.
func (e *Editor) edit(ch textbuf.Change) error {
	offs := e.doc.CursorOffsets()
	if err := e.doc.AddChange(ch); err != nil {
		e.doc.Discard()
		return err
	}
	c, err := e.doc.ApplyChanges()
	if err != nil {
		return err
	}
	e.doc.RemapCursors(offs, c)
	return nil
}

// editSelections is like edit, but stages ch only for cursors holding a
// selection.
func (e *Editor) editSelections(ch textbuf.Change) error {
	all := e.doc.Cursors()
	offs := e.doc.CursorOffsets()
	e.doc.ClearCursors()
	for _, c := range all {
		if c.HasSelection() {
			e.doc.AddCursor(c)
		}
	}
	err := e.doc.AddChange(ch)
	e.doc.ClearCursors()
	for _, c := range all {
		e.doc.AddCursor(c)
	}
	if err != nil {
		e.doc.Discard()
		return err
	}
	c, err := e.doc.ApplyChanges()
	if err != nil {
		return err
	}
	e.doc.RemapCursors(offs, c)
	return nil
}

// addCursor adds a cursor dir lines above or below the last cursor.
func (e *Editor) addCursor(dir int) {
	last, err := e.doc.CursorAt(e.doc.CursorCount() - 1)
	if err != nil {
		return
	}
	line := last.Pos.Line + dir
	if line < 0 || line >= e.doc.LineCount() {
		return
	}
	e.doc.AddCursor(textbuf.NewCursor(textbuf.Pos(line, last.Pos.Col)))
	e.doc.CorrectCursors(false)
}

// click places the caret at the clicked cell. With Alt a cursor is added,
// with Shift the primary cursor's selection is extended, with Ctrl the word
// under the click is selected.
func (e *Editor) click(ev Event) {
	p := e.view.PositionAt(e.doc, ev.X, ev.Y)
	switch {
	case ev.Mod.Has(ModCtrl):
		e.doc.ClearCursors()
		e.doc.AddCursor(e.selectWord(p))
	case ev.Mod.Has(ModAlt):
		e.doc.AddCursor(textbuf.NewCursor(p))
	case ev.Mod.Has(ModShift) && e.doc.CursorCount() > 0:
		c, _ := e.doc.CursorAt(0)
		c.Position(p, true)
		e.doc.ClearCursors()
		e.doc.AddCursor(c)
	default:
		e.doc.ClearCursors()
		e.doc.AddCursor(textbuf.NewCursor(p))
	}
}

// selectWord returns a selection of the word at p, or a caret at p if there
// is no word.
func (e *Editor) selectWord(p textbuf.Position) textbuf.Cursor {
	off, err := e.doc.Offset(p)
	if err != nil {
		return textbuf.NewCursor(p)
	}
	span, ok := metrics.WordAt(e.doc, off)
	if !ok {
		return textbuf.NewCursor(p)
	}
	from, _ := e.doc.PosFromOffset(span.Pos)
	to, _ := e.doc.PosFromOffset(span.End())
	return textbuf.NewSelection(from, to)
}

// scroll keeps the caret of the primary cursor in view.
func (e *Editor) scroll() {
	c, err := e.doc.CursorAt(0)
	if err != nil || e.height <= 0 {
		return
	}
	e.view.ScrollTo(e.doc, c.Pos, e.width, e.height)
}
