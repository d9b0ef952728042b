package chunk

import "fmt"

// Position is a (line, column) coordinate in a document.
//
// Lines are counted from 0. Columns are byte offsets from the start of the
// logical line, which may span several segments.
type Position struct {
	Line int
	Col  int
}

// Pos is a shortcut for Position{Line: line, Col: col}.
func Pos(line, col int) Position {
	return Position{Line: line, Col: col}
}

// Compare returns -1 if p is before q, 1 if p is after q, and 0 otherwise.
func (p Position) Compare(q Position) int {
	switch {
	case p.Line < q.Line:
		return -1
	case p.Line > q.Line:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	default:
		return 0
	}
}

// Before reports whether p is located before q.
func (p Position) Before(q Position) bool {
	return p.Compare(q) < 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Col)
}
