package widget

import "fmt"

// Kind tags the variant of an Event.
type Kind uint8

// Event kinds.
const (
	NoEvent Kind = iota
	KeyEvent
	PasteEvent
	ClickEvent
	ResizeEvent
)

func (k Kind) String() string {
	switch k {
	case KeyEvent:
		return "key"
	case PasteEvent:
		return "paste"
	case ClickEvent:
		return "click"
	case ResizeEvent:
		return "resize"
	}
	return "none"
}

// Key identifies a key of a KeyEvent.
type Key uint8

// Keys understood by the editor. KeyRune denotes a printable character.
const (
	KeyNone Key = iota
	KeyRune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
)

// Mod is a set of modifier keys.
type Mod uint8

// Modifiers.
const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether m contains all modifiers of o.
func (m Mod) Has(o Mod) bool {
	return m&o == o
}

// Event is an input event. Kind selects which of the other fields are
// meaningful:
//
//	KeyEvent     Key, Rune (for KeyRune), Mod
//	PasteEvent   Text
//	ClickEvent   X, Y (cell of the surface), Mod
//	ResizeEvent  X, Y (width and height of the surface)
type Event struct {
	Kind Kind
	Key  Key
	Rune rune
	Mod  Mod
	Text string
	X, Y int
}

// Press creates a key event.
func Press(k Key, mod Mod) Event {
	return Event{Kind: KeyEvent, Key: k, Mod: mod}
}

// Char creates a key event for a printable character.
func Char(r rune, mod Mod) Event {
	return Event{Kind: KeyEvent, Key: KeyRune, Rune: r, Mod: mod}
}

// Paste creates a paste event.
func Paste(text string) Event {
	return Event{Kind: PasteEvent, Text: text}
}

// Click creates a mouse click event for cell (x, y).
func Click(x, y int, mod Mod) Event {
	return Event{Kind: ClickEvent, X: x, Y: y, Mod: mod}
}

// Resize creates an event announcing a new surface size.
func Resize(width, height int) Event {
	return Event{Kind: ResizeEvent, X: width, Y: height}
}

func (e Event) String() string {
	switch e.Kind {
	case KeyEvent:
		if e.Key == KeyRune {
			return fmt.Sprintf("key(%q,%d)", e.Rune, e.Mod)
		}
		return fmt.Sprintf("key(#%d,%d)", e.Key, e.Mod)
	case PasteEvent:
		return fmt.Sprintf("paste(%d bytes)", len(e.Text))
	case ClickEvent, ResizeEvent:
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.X, e.Y)
	}
	return e.Kind.String()
}
