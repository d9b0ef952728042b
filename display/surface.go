package display

import (
	"strings"
)

// Style is the visual role of a cell.
type Style uint8

// Styles used when drawing a document.
const (
	StyleText Style = iota
	StyleSelection
	StyleCaret
	StyleGutter
)

func (s Style) String() string {
	switch s {
	case StyleSelection:
		return "selection"
	case StyleCaret:
		return "caret"
	case StyleGutter:
		return "gutter"
	}
	return "text"
}

// Surface is a rendering context: a grid of fixed-width cells.
//
// SetCell puts a grapheme cluster into the cell at (x, y). A wide grapheme
// occupies the following cells, too; they are set to the empty string.
type Surface interface {
	Size() (width, height int)
	SetCell(x, y int, grapheme string, style Style)
	Clear()
}

// Grid is an in-memory Surface.
type Grid struct {
	width, height int
	cells         []gridCell
}

type gridCell struct {
	text  string
	style Style
}

var _ Surface = (*Grid)(nil)

// NewGrid creates a grid of width × height cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height, cells: make([]gridCell, width*height)}
	g.Clear()
	return g
}

// Size returns the dimensions of the grid.
func (g *Grid) Size() (int, int) {
	return g.width, g.height
}

// SetCell puts a grapheme into a cell. Cells outside the grid are ignored.
func (g *Grid) SetCell(x, y int, grapheme string, style Style) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = gridCell{text: grapheme, style: style}
}

// Clear fills the grid with blanks.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = gridCell{text: " "}
	}
}

// Cell returns the content of cell (x, y).
func (g *Grid) Cell(x, y int) (string, Style) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return "", StyleText
	}
	c := g.cells[y*g.width+x]
	return c.text, c.style
}

// Row returns row y as a string with trailing blanks removed.
func (g *Grid) Row(y int) string {
	var b strings.Builder
	for x := range g.width {
		t, _ := g.Cell(x, y)
		b.WriteString(t)
	}
	return strings.TrimRight(b.String(), " ")
}

// String returns all rows, separated by newlines.
func (g *Grid) String() string {
	rows := make([]string, g.height)
	for y := range g.height {
		rows[y] = g.Row(y)
	}
	return strings.Join(rows, "\n")
}
