package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/textbuf/display"
	"github.com/npillmayer/textbuf/widget"
)

// screenSurface adapts a tcell screen to display.Surface.
type screenSurface struct {
	screen tcell.Screen
	styles map[display.Style]tcell.Style
}

var _ display.Surface = screenSurface{}

func newScreenSurface(s tcell.Screen) screenSurface {
	return screenSurface{
		screen: s,
		styles: map[display.Style]tcell.Style{
			display.StyleText:      tcell.StyleDefault,
			display.StyleSelection: tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorBlack),
			display.StyleCaret:     tcell.StyleDefault.Reverse(true),
			display.StyleGutter:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
		},
	}
}

func (s screenSurface) Size() (int, int) {
	return s.screen.Size()
}

// SetCell skips the empty continuation cells of wide graphemes, tcell
// handles those itself.
func (s screenSurface) SetCell(x, y int, grapheme string, style display.Style) {
	if grapheme == "" {
		return
	}
	runes := []rune(grapheme)
	s.screen.SetContent(x, y, runes[0], runes[1:], s.styles[style])
}

func (s screenSurface) Clear() {
	s.screen.Clear()
}

// --- Input -----------------------------------------------------------------

var keys = map[tcell.Key]widget.Key{
	tcell.KeyLeft:       widget.KeyLeft,
	tcell.KeyRight:      widget.KeyRight,
	tcell.KeyUp:         widget.KeyUp,
	tcell.KeyDown:       widget.KeyDown,
	tcell.KeyHome:       widget.KeyHome,
	tcell.KeyEnd:        widget.KeyEnd,
	tcell.KeyBackspace:  widget.KeyBackspace,
	tcell.KeyBackspace2: widget.KeyBackspace,
	tcell.KeyDelete:     widget.KeyDelete,
	tcell.KeyEnter:      widget.KeyEnter,
	tcell.KeyTab:        widget.KeyTab,
	tcell.KeyEscape:     widget.KeyEscape,
}

func modifiers(m tcell.ModMask) widget.Mod {
	var mod widget.Mod
	if m&tcell.ModShift != 0 {
		mod |= widget.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= widget.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= widget.ModAlt
	}
	return mod
}

// keyEvent translates a tcell key press into an editor event. Control
// characters tcell reports as keys of their own are mapped to Ctrl-runes.
func keyEvent(k tcell.Key, r rune, m tcell.ModMask) (widget.Event, bool) {
	mod := modifiers(m)
	if k == tcell.KeyRune {
		return widget.Char(r, mod), true
	}
	if key, ok := keys[k]; ok {
		return widget.Press(key, mod), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return widget.Char('a'+rune(k-tcell.KeyCtrlA), mod|widget.ModCtrl), true
	}
	return widget.Event{}, false
}

// pasteBuffer collects the keys of a bracketed paste.
type pasteBuffer struct {
	active bool
	text   []rune
}

func (p *pasteBuffer) start() {
	p.active, p.text = true, p.text[:0]
}

func (p *pasteBuffer) add(k tcell.Key, r rune) {
	switch k {
	case tcell.KeyRune:
		p.text = append(p.text, r)
	case tcell.KeyEnter:
		p.text = append(p.text, '\n')
	case tcell.KeyTab:
		p.text = append(p.text, '\t')
	}
}

func (p *pasteBuffer) end() widget.Event {
	p.active = false
	return widget.Paste(string(p.text))
}
