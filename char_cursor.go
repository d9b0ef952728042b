package textbuf

import (
	"unicode/utf8"
)

// CharCursor navigates a document by UTF-8 rune positions.
//
// The cursor is bound to one committed document state. It must not be used
// across a call to ApplyChanges.
type CharCursor struct {
	doc     *Document
	byteOff int
}

// NewCharCursor creates a rune-aware cursor at byte offset off of doc.
func (doc *Document) NewCharCursor(off int) (*CharCursor, error) {
	if off < 0 || off > doc.Len() {
		return nil, ErrPositionOutOfRange
	}
	return &CharCursor{doc: doc, byteOff: off}, nil
}

// ByteOffset returns the current cursor byte offset.
func (cc *CharCursor) ByteOffset() int {
	if cc == nil {
		return 0
	}
	return cc.byteOff
}

// Seek moves the cursor to byte offset off.
func (cc *CharCursor) Seek(off int) error {
	if cc == nil {
		return ErrIllegalArguments
	}
	if off < 0 || off > cc.doc.Len() {
		return ErrPositionOutOfRange
	}
	cc.byteOff = off
	return nil
}

// Next returns the rune at the current cursor position and advances by one rune.
//
// If the cursor is at end-of-document, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc == nil || cc.byteOff >= cc.doc.Len() {
		return 0, false
	}
	n := cc.doc.runeWidthAt(cc.byteOff)
	if n == 2 {
		if b, _ := cc.doc.byteAt(cc.byteOff); b == '\r' {
			cc.byteOff++ // CR of a CR-LF pair
			return '\r', true
		}
	}
	r = cc.decode(cc.byteOff, n)
	cc.byteOff += n
	return r, true
}

// Prev returns the rune before the current cursor position and moves back by
// one rune.
//
// If the cursor is at start-of-document, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	if cc == nil || cc.byteOff == 0 {
		return 0, false
	}
	n := cc.doc.runeWidthBefore(cc.byteOff)
	if n == 2 {
		if b, _ := cc.doc.byteAt(cc.byteOff - 1); b == '\n' {
			cc.byteOff-- // LF of a CR-LF pair
			return '\n', true
		}
	}
	cc.byteOff -= n
	return cc.decode(cc.byteOff, n), true
}

// Peek returns the rune at the current cursor position without moving.
func (cc *CharCursor) Peek() (r rune, ok bool) {
	if cc == nil || cc.byteOff >= cc.doc.Len() {
		return 0, false
	}
	b, _ := cc.doc.byteAt(cc.byteOff)
	if b == '\r' {
		return '\r', true
	}
	return cc.decode(cc.byteOff, cc.doc.runeWidthAt(cc.byteOff)), true
}

func (cc *CharCursor) decode(off, n int) rune {
	var buf [utf8.UTFMax]byte
	for i := 0; i < n && i < utf8.UTFMax; i++ {
		buf[i], _ = cc.doc.byteAt(off + i)
	}
	r, _ := utf8.DecodeRune(buf[:min(n, utf8.UTFMax)])
	return r
}
