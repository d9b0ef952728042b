package display

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// DefaultTabWidth is used for tab expansion if no tab width is configured.
const DefaultTabWidth = 4

var setupGraphemes sync.Once

// Glyph is a grapheme cluster of a line, together with its location in bytes
// and in screen cells.
type Glyph struct {
	Text   string // the grapheme cluster
	Offset int    // byte column inside the line
	Col    int    // screen column of the first cell
	Width  int    // number of cells occupied
}

// Len returns the number of bytes of the glyph.
func (g Glyph) Len() int {
	return len(g.Text)
}

// Layout splits a line of text into glyphs. Tabs are expanded to the next
// multiple of tabWidth, control characters occupy one cell. If ctx is nil,
// uax11.LatinContext is used.
func Layout(line string, tabWidth int, ctx *uax11.Context) []Glyph {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	gstr := grapheme.StringFromString(line)
	glyphs := make([]Glyph, 0, gstr.Len())
	off, col := 0, 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		w := 1 // control characters
		switch {
		case g == "\t":
			w = tabWidth - col%tabWidth
		case g[0] >= ' ' && g[0] != 0x7f:
			w = uax11.StringWidth(grapheme.StringFromString(g), ctx)
		}
		glyphs = append(glyphs, Glyph{Text: g, Offset: off, Col: col, Width: w})
		off += len(g)
		col += w
	}
	return glyphs
}

// Width returns the number of screen cells of a line of glyphs.
func Width(glyphs []Glyph) int {
	if len(glyphs) == 0 {
		return 0
	}
	last := glyphs[len(glyphs)-1]
	return last.Col + last.Width
}

// ScreenX returns the screen column of byte column col. Byte columns inside
// a glyph map to the glyph's first cell, columns behind the last glyph
// extend the line by one cell per byte.
func ScreenX(glyphs []Glyph, col int) int {
	for _, g := range glyphs {
		if col < g.Offset+g.Len() {
			return g.Col
		}
	}
	end := 0
	if len(glyphs) > 0 {
		end = glyphs[len(glyphs)-1].Offset + glyphs[len(glyphs)-1].Len()
	}
	return Width(glyphs) + max(col-end, 0)
}

// ColumnAt returns the byte column for screen column x. A cell covered by a
// glyph maps to the start of the glyph; cells behind the line map to the
// end of the line.
func ColumnAt(glyphs []Glyph, x int) int {
	if x <= 0 {
		return 0
	}
	for _, g := range glyphs {
		if x < g.Col+g.Width {
			return g.Offset
		}
	}
	if len(glyphs) == 0 {
		return 0
	}
	last := glyphs[len(glyphs)-1]
	return last.Offset + last.Len()
}
