package display

import (
	"strconv"

	"github.com/npillmayer/textbuf"
	"github.com/npillmayer/uax/uax11"
)

// View is a viewport on a document. Top is the first line shown, Left the
// first screen column of the text area shown.
type View struct {
	Top, Left int
	TabWidth  int
	Gutter    bool           // show line numbers
	Context   *uax11.Context // nil for uax11.LatinContext
}

// GutterWidth returns the number of cells occupied by line numbers.
func (v *View) GutterWidth(doc *textbuf.Document) int {
	if !v.Gutter {
		return 0
	}
	return len(strconv.Itoa(doc.LineCount())) + 1
}

// Glyphs lays out line i of doc.
func (v *View) Glyphs(doc *textbuf.Document, i int) []Glyph {
	return Layout(doc.LineText(i), v.TabWidth, v.Context)
}

// Render draws doc onto s. Selections and carets of all cursors of doc are
// highlighted; a caret at a line end is drawn as a blank cell.
func (v *View) Render(doc *textbuf.Document, s Surface) {
	s.Clear()
	width, height := s.Size()
	gw := v.GutterWidth(doc)
	marks := newMarks(doc)
	for row := range height {
		line := v.Top + row
		if line >= doc.LineCount() {
			break
		}
		if gw > 0 {
			num := strconv.Itoa(line + 1)
			for i, r := range num {
				s.SetCell(gw-1-len(num)+i, row, string(r), StyleGutter)
			}
		}
		li := doc.Line(line)
		glyphs := v.Glyphs(doc, line)
		for _, g := range glyphs {
			x := gw + g.Col - v.Left
			if g.Width == 0 || x < gw || x+g.Width > width {
				continue
			}
			style := marks.style(li.Start + g.Offset)
			if g.Text == "\t" || g.Text[0] < ' ' || g.Text[0] == 0x7f {
				for k := range g.Width {
					s.SetCell(x+k, row, " ", style)
				}
				continue
			}
			s.SetCell(x, row, g.Text, style)
			for k := 1; k < g.Width; k++ {
				s.SetCell(x+k, row, "", style)
			}
		}
		if marks.carets[li.End] {
			x := gw + Width(glyphs) - v.Left
			if x >= gw && x < width {
				s.SetCell(x, row, " ", StyleCaret)
			}
		}
	}
	tracer().Debugf("display: rendered lines %d… of %d", v.Top, doc.LineCount())
}

// ScrollTo adjusts the viewport of a surface of the given size such that
// position p is visible.
func (v *View) ScrollTo(doc *textbuf.Document, p textbuf.Position, width, height int) {
	if p.Line < v.Top {
		v.Top = p.Line
	} else if height > 0 && p.Line >= v.Top+height {
		v.Top = p.Line - height + 1
	}
	x := ScreenX(v.Glyphs(doc, p.Line), p.Col)
	text := width - v.GutterWidth(doc)
	if x < v.Left {
		v.Left = x
	} else if text > 0 && x >= v.Left+text {
		v.Left = x - text + 1
	}
}

// PositionAt maps cell (x, y) of a surface showing this view to a document
// position. Cells behind a line map to its end, rows behind the document to
// the end of the last line.
func (v *View) PositionAt(doc *textbuf.Document, x, y int) textbuf.Position {
	line := v.Top + max(y, 0)
	if line >= doc.LineCount() {
		line = doc.LineCount() - 1
		return textbuf.Pos(line, doc.Line(line).Width)
	}
	col := ColumnAt(v.Glyphs(doc, line), x-v.GutterWidth(doc)+v.Left)
	return textbuf.Pos(line, col)
}

// marks holds the caret offsets and selection ranges of a document's cursors.
type marks struct {
	carets     map[int]bool
	selections [][2]int
}

func newMarks(doc *textbuf.Document) marks {
	m := marks{carets: make(map[int]bool)}
	for _, c := range doc.Cursors() {
		if off, err := doc.Offset(c.Pos); err == nil {
			m.carets[off] = true
		}
		if !c.HasSelection() {
			continue
		}
		from, to := c.Selection()
		start, err1 := doc.Offset(from)
		end, err2 := doc.Offset(to)
		if err1 == nil && err2 == nil {
			m.selections = append(m.selections, [2]int{start, end})
		}
	}
	return m
}

func (m marks) style(off int) Style {
	if m.carets[off] {
		return StyleCaret
	}
	for _, sel := range m.selections {
		if off >= sel[0] && off < sel[1] {
			return StyleSelection
		}
	}
	return StyleText
}
