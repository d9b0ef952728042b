package metrics

import (
	"github.com/npillmayer/textbuf"
)

// lineWords returns the words of line l of doc, clipped to [from,to).
func lineWords(doc *textbuf.Document, l, from, to int) []Span {
	li := doc.Line(l)
	from, to = max(from, li.Start), min(to, li.End)
	if from >= to {
		return nil
	}
	v, _, err := Words().Apply(doc, from, to)
	if err != nil {
		tracer().Errorf("metrics: line %d: %v", l, err)
		return nil
	}
	return v.Spans
}

func lineOf(doc *textbuf.Document, off int) (int, bool) {
	pos, err := doc.PosFromOffset(off)
	if err != nil {
		return 0, false
	}
	return pos.Line, true
}

// NextWordEnd returns the offset behind the end of the word at or after
// offset off. Spaces in front of the word are skipped. At the end of the
// document, the document length is returned.
func NextWordEnd(doc *textbuf.Document, off int) int {
	l, ok := lineOf(doc, off)
	if !ok {
		return doc.Len()
	}
	for ; l < doc.LineCount(); l++ {
		if spans := lineWords(doc, l, off, doc.Len()); len(spans) > 0 {
			return spans[0].End()
		}
	}
	return doc.Len()
}

// PrevWordStart returns the offset of the start of the word before offset
// off. Spaces behind the word are skipped. At the start of the document, 0 is
// returned.
func PrevWordStart(doc *textbuf.Document, off int) int {
	l, ok := lineOf(doc, off)
	if !ok {
		return 0
	}
	for ; l >= 0; l-- {
		if spans := lineWords(doc, l, 0, off); len(spans) > 0 {
			return spans[len(spans)-1].Pos
		}
	}
	return 0
}

// WordAt returns the span of the word containing offset off. ok is false if
// off does not address a word character.
func WordAt(doc *textbuf.Document, off int) (span Span, ok bool) {
	l, ok := lineOf(doc, off)
	if !ok {
		return Span{}, false
	}
	for _, s := range lineWords(doc, l, 0, doc.Len()) {
		if s.Contains(off) {
			return s, true
		}
	}
	return Span{}, false
}
