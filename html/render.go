package html

import (
	"io"

	"github.com/npillmayer/textbuf"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names used by Render.
const (
	ClassDocument  = "textbuf"
	ClassLine      = "line"
	ClassCaret     = "caret"
	ClassSelection = "selection"
)

// Render writes a snapshot of doc as HTML to w. The document is rendered as
// a <pre> element with one <span> per line. Carets are rendered as empty
// <span> elements, selections as <mark> elements, both at byte granularity.
func Render(doc *textbuf.Document, w io.Writer) error {
	return html.Render(w, Node(doc))
}

// Node creates an HTML node tree for a snapshot of doc.
func Node(doc *textbuf.Document) *html.Node {
	pre := element(atom.Pre, ClassDocument)
	marks := collectMarks(doc)
	for i := range doc.LineCount() {
		li := doc.Line(i)
		line := element(atom.Span, ClassLine)
		text := doc.LineText(i)
		var sel *html.Node
		flush := func(from, to int) {
			if from >= to {
				return
			}
			parent := line
			if sel != nil {
				parent = sel
			}
			parent.AppendChild(&html.Node{Type: html.TextNode, Data: text[from:to]})
		}
		from := 0
		for col := 0; col <= len(text); col++ {
			off := li.Start + col
			m := marks[off]
			if m == 0 {
				continue
			}
			flush(from, col)
			from = col
			if m&selEnd != 0 && sel != nil {
				line.AppendChild(sel)
				sel = nil
			}
			if m&caret != 0 {
				line.AppendChild(element(atom.Span, ClassCaret))
			}
			if m&selStart != 0 && sel == nil {
				sel = element(atom.Mark, ClassSelection)
			}
		}
		flush(from, len(text))
		if sel != nil {
			line.AppendChild(sel)
		}
		pre.AppendChild(line)
		if li.NewlineWidth > 0 {
			pre.AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
		}
	}
	return pre
}

const (
	caret uint8 = 1 << iota
	selStart
	selEnd
)

// collectMarks maps byte offsets to the marks rendered in front of them.
// Selections are clipped to lines by the line loop.
func collectMarks(doc *textbuf.Document) map[int]uint8 {
	marks := make(map[int]uint8)
	for _, c := range doc.Cursors() {
		if off, err := doc.Offset(c.Pos); err == nil {
			marks[off] |= caret
		}
		if !c.HasSelection() {
			continue
		}
		from, to := c.Selection()
		start, err1 := doc.Offset(from)
		end, err2 := doc.Offset(to)
		if err1 != nil || err2 != nil {
			continue
		}
		for i := range doc.LineCount() {
			li := doc.Line(i)
			lo, hi := max(start, li.Start), min(end, li.End)
			if lo < hi {
				marks[lo] |= selStart
				marks[hi] |= selEnd
			}
		}
	}
	return marks
}

func element(a atom.Atom, class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}
