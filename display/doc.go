/*
Package display is the rendering boundary of documents.

Rendering consumes only the read API of a document: lines, line texts,
cursors and position translation. A document is drawn onto a Surface, which
is any grid of fixed-width cells (a terminal screen, a test grid). Display
widths of grapheme clusters are computed with UAX#11 (East Asian Width), so
wide characters occupy two cells and combining sequences stay in one.

Screen columns are not byte columns. Layout translates between the two:
ScreenX maps a byte column to a screen column, ColumnAt is the inverse
glyph-width lookup used to map mouse clicks back to document positions.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuf'
func tracer() tracing.Trace {
	return tracing.Select("textbuf")
}
