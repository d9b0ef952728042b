package textbuf

import (
	"fmt"
	"sort"
)

// PosIndex translates a (line, column) position into a global byte offset and
// the number of the segment owning it.
//
// PosIndex scans the segment indices in document order and, inside a segment,
// its line table. If no segment addresses pos, PosIndex returns the sentinel
// (0, doc.SegmentCount()); callers must treat a segment number equal to the
// segment count as "no such position". The position just behind the last
// byte of the document is addressable only if the document ends with a line
// terminator; use Offset to include it in any case.
func (doc *Document) PosIndex(pos Position) (int, int) {
	for s := range doc.infos {
		info := &doc.infos[s]
		if pos.Line < info.StartPos.Line {
			break // line indices are ascending
		}
		if pos.Line > info.EndPos.Line {
			continue
		}
		i := pos.Line - info.StartPos.Line
		if info.Matches(i, pos.Col) {
			return info.Offset(i, pos.Col), s
		}
	}
	return 0, len(doc.segments)
}

// Offset translates a (line, column) position into a global byte offset.
// The end position of the document maps to Len(). Any other position not
// addressed by a segment results in ErrPositionOutOfRange.
func (doc *Document) Offset(pos Position) (int, error) {
	off, s := doc.PosIndex(pos)
	if s < len(doc.segments) {
		return off, nil
	}
	if pos == doc.EndPos() {
		return doc.Len(), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrPositionOutOfRange, pos)
}

// stagingOffset translates pos for staging. Positions not addressed by any
// segment are treated as the document end.
func (doc *Document) stagingOffset(pos Position) int {
	off, s := doc.PosIndex(pos)
	if s == len(doc.segments) {
		tracer().Debugf("position %s not addressable, staging at document end", pos)
		return doc.Len()
	}
	return off
}

// PosFromOffset translates a global byte offset into a (line, column)
// position. Offsets inside a CR-LF terminator resolve to the column of the
// terminator.
func (doc *Document) PosFromOffset(off int) (Position, error) {
	if off < 0 || off > doc.Len() {
		return Position{}, fmt.Errorf("%w: offset %d of %d", ErrPositionOutOfRange, off, doc.Len())
	}
	info := doc.infos[doc.segmentAt(off)]
	entry, col, ok := info.Locate(off)
	if !ok {
		return Position{}, fmt.Errorf("%w: offset %d: %w", ErrSegmentIndexStale, off, ErrPositionOutOfRange)
	}
	return Pos(info.LineNumber(entry), col), nil
}

// EndPos returns the position just behind the last byte of the document.
func (doc *Document) EndPos() Position {
	return doc.infos[len(doc.infos)-1].EndPos
}

// LineCount returns the number of logical lines. A text ending with a line
// terminator has an empty last line; the empty document has one line.
func (doc *Document) LineCount() int {
	return doc.EndPos().Line + 1
}

// LineInfo describes a logical line, which may span more than one segment.
type LineInfo struct {
	Width        int // in bytes, excluding the terminator
	Start        int // global offset of the first byte
	End          int // global offset of the terminator or of the document end
	StartSegment int
	EndSegment   int
	NewlineWidth int // 0 for the last line
}

// Line returns the description of logical line i. Line numbers beyond the
// last line are clamped to the last line, negative ones to line 0.
func (doc *Document) Line(i int) LineInfo {
	i = min(max(i, 0), doc.LineCount()-1)
	s := sort.Search(len(doc.infos), func(k int) bool {
		return doc.infos[k].EndPos.Line >= i
	})
	info := &doc.infos[s]
	l := info.Lines[i-info.StartPos.Line]
	li := LineInfo{Start: info.Start + l.Start, StartSegment: s}
	// an unterminated entry is the last of its segment and is continued by
	// the first entry of the next one
	for !l.IsTerminated() && s+1 < len(doc.infos) {
		s++
		info = &doc.infos[s]
		l = info.Lines[0]
	}
	li.End = info.Start + l.End
	li.EndSegment = s
	li.NewlineWidth = l.NewlineWidth
	li.Width = li.End - li.Start
	return li
}

// LineText returns the text of logical line i, excluding its terminator.
func (doc *Document) LineText(i int) string {
	li := doc.Line(i)
	text, err := doc.Report(li.Start, li.Width)
	assert(err == nil, "LineText: line exceeds document")
	return text
}
