package chunk

// Line is one entry of a segment's line table.
//
// Start and End are segment-local byte offsets; End excludes the line
// terminator. NewlineWidth is 1 for "\n", 2 for "\r\n", and 0 for the final,
// unterminated line of a segment.
type Line struct {
	Start        int
	End          int
	NewlineWidth int
}

// Width returns the number of bytes of the line, excluding its terminator.
func (l Line) Width() int {
	return l.End - l.Start
}

// IsTerminated reports whether the line ends with a line terminator inside
// the segment.
func (l Line) IsTerminated() bool {
	return l.NewlineWidth > 0
}

// Info is the derived index of a segment: its global offset range, the
// positions of its first and one-past-last byte, and its line table.
//
// For a segment s, End == Start + s.Len(). For consecutive segments,
// Info[i].End == Info[i+1].Start and Info[i].EndPos == Info[i+1].StartPos.
type Info struct {
	Start    int
	End      int
	StartPos Position
	EndPos   Position
	Lines    []Line
}

// Recompute derives the index of seg from scratch.
//
// startOffset and startPos have to be the End and EndPos of the preceding
// segment (0 and (0,0) for the first one).
func Recompute(seg *Segment, startOffset int, startPos Position) Info {
	info := Info{
		Start:    startOffset,
		End:      startOffset + len(seg.content),
		StartPos: startPos,
		Lines:    make([]Line, 0, 4),
	}
	text := seg.content
	lineStart := 0
	for i, b := range text {
		if b != '\n' {
			continue
		}
		end, w := i, 1
		if i > lineStart && text[i-1] == '\r' {
			end, w = i-1, 2
		}
		info.Lines = append(info.Lines, Line{Start: lineStart, End: end, NewlineWidth: w})
		lineStart = i + 1
	}
	info.Lines = append(info.Lines, Line{Start: lineStart, End: len(text)})
	last := len(info.Lines) - 1
	info.EndPos = Position{
		Line: startPos.Line + last,
		Col:  info.firstColumn(last) + info.Lines[last].Width(),
	}
	return info
}

// Len returns the number of bytes covered by the index.
func (info Info) Len() int {
	return info.End - info.Start
}

// LineCount returns the number of line table entries.
func (info Info) LineCount() int {
	return len(info.Lines)
}

// LineNumber returns the logical line number of line table entry i.
func (info Info) LineNumber(i int) int {
	return info.StartPos.Line + i
}

// ColumnRange returns the half-open column range [min, max) addressable on
// line table entry i. The first entry continues the line of the preceding
// segment and therefore starts at StartPos.Col. A terminated line includes
// the column of its terminator (the caret position at the end of the line).
// An empty, unterminated line has min == max and is addressable at min only.
func (info Info) ColumnRange(i int) (int, int) {
	lo := info.firstColumn(i)
	l := info.Lines[i]
	hi := lo + l.Width()
	if l.IsTerminated() {
		hi++
	}
	return lo, hi
}

// Matches reports whether column col of line table entry i is addressable.
func (info Info) Matches(i int, col int) bool {
	lo, hi := info.ColumnRange(i)
	if lo == hi {
		return col == lo
	}
	return col >= lo && col < hi
}

// Offset returns the global offset of column col on line table entry i.
// The column is not validated.
func (info Info) Offset(i int, col int) int {
	return info.Start + info.Lines[i].Start + col - info.firstColumn(i)
}

// Contains reports whether global offset off addresses a byte of the segment.
func (info Info) Contains(off int) bool {
	return off >= info.Start && off < info.End
}

// Locate returns the line table entry and the column of global offset off.
// Offsets inside a CR-LF terminator resolve to the column of the terminator.
// ok is false if off lies outside of [Start, End].
func (info Info) Locate(off int) (entry int, col int, ok bool) {
	if off < info.Start || off > info.End {
		return 0, 0, false
	}
	local := off - info.Start
	for i, l := range info.Lines {
		if local < l.Start {
			break
		}
		if local < l.End+l.NewlineWidth || (!l.IsTerminated() && local == l.End) {
			return i, info.firstColumn(i) + min(local, l.End) - l.Start, true
		}
	}
	return 0, 0, false
}

func (info Info) firstColumn(i int) int {
	if i == 0 {
		return info.StartPos.Col
	}
	return 0
}
