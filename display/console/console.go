/*
Package console prints documents to a console with a fixed width font.

Carets, selections and line numbers are shown in color. Colors are switched
off automatically if the output is not a terminal (see package
github.com/fatih/color).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textbuf"
	"github.com/npillmayer/textbuf/display"
	"golang.org/x/term"
)

// tracer writes to trace with key 'textbuf'
func tracer() tracing.Trace {
	return tracing.Select("textbuf")
}

// ConsoleFixedWidth is a type for outputting documents to a console with a
// fixed width font. Lines longer than the console width are cut.
type ConsoleFixedWidth struct {
	View   display.View
	Width  int // line length in fixed width ‘en’s; 0 to ask the terminal
	colors map[display.Style]*color.Color
}

// NewConsoleFixedWidth creates a new formatter. colors is a map from the
// display styles to colors. It may contain just a subset of the styles; nil
// selects a default palette.
func NewConsoleFixedWidth(colors map[display.Style]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{
		View: display.View{Gutter: true},
	}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	} else {
		fw.colors = colors
	}
	return fw
}

func makeDefaultPalette() map[display.Style]*color.Color {
	return map[display.Style]*color.Color{
		display.StyleGutter:    color.New(color.FgBlue),
		display.StyleSelection: color.New(color.BgCyan, color.FgBlack),
		display.StyleCaret:     color.New(color.ReverseVideo),
	}
}

// Print outputs doc to stdout.
func (fw *ConsoleFixedWidth) Print(doc *textbuf.Document) error {
	return fw.Output(doc, os.Stdout)
}

// Output writes all lines of doc to w, starting at the view's top line.
func (fw *ConsoleFixedWidth) Output(doc *textbuf.Document, w io.Writer) error {
	width := fw.Width
	if width <= 0 {
		width = WidthFromTerminal()
	}
	height := max(doc.LineCount()-fw.View.Top, 0)
	grid := display.NewGrid(width, height)
	fw.View.Render(doc, grid)
	for y := range height {
		if err := fw.outputRow(grid, y, width, w); err != nil {
			return err
		}
	}
	return nil
}

// outputRow writes runs of uniformly styled cells, omitting trailing blanks.
func (fw *ConsoleFixedWidth) outputRow(grid *display.Grid, y, width int, w io.Writer) error {
	end := width
	for end > 0 {
		t, s := grid.Cell(end-1, y)
		if s != display.StyleText || (t != " " && t != "") {
			break
		}
		end--
	}
	var run strings.Builder
	style := display.StyleText
	flush := func() error {
		if run.Len() == 0 {
			return nil
		}
		defer run.Reset()
		if c, ok := fw.colors[style]; ok && style != display.StyleText {
			_, err := c.Fprint(w, run.String())
			return err
		}
		_, err := io.WriteString(w, run.String())
		return err
	}
	for x := range end {
		t, s := grid.Cell(x, y)
		if s != style {
			if err := flush(); err != nil {
				return err
			}
			style = s
		}
		run.WriteString(t)
	}
	if err := flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// --- Terminals -------------------------------------------------------------

// WidthFromTerminal is a simple helper for finding the line length.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width. Otherwise 80 is returned.
func WidthFromTerminal() int {
	width := 80
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			width = w
		}
	}
	tracer().Infof("console: setting line length to %d en", width)
	return width
}
