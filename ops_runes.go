package textbuf

import "unicode/utf8"

// runeWidthAt returns the byte width of the character starting at offset off,
// 0 at the document end. A CR-LF pair counts as one character.
func (doc *Document) runeWidthAt(off int) int {
	b, ok := doc.byteAt(off)
	if !ok {
		return 0
	}
	if b == '\r' {
		if next, ok := doc.byteAt(off + 1); ok && next == '\n' {
			return 2
		}
	}
	if b < utf8.RuneSelf {
		return 1
	}
	var buf [utf8.UTFMax]byte
	n := 0
	for ; n < utf8.UTFMax; n++ {
		c, ok := doc.byteAt(off + n)
		if !ok {
			break
		}
		buf[n] = c
	}
	_, w := utf8.DecodeRune(buf[:n])
	return w
}

// runeWidthBefore returns the byte width of the character ending at offset
// off, 0 at the document start. A CR-LF pair counts as one character.
func (doc *Document) runeWidthBefore(off int) int {
	if off <= 0 {
		return 0
	}
	b, _ := doc.byteAt(off - 1)
	if b == '\n' {
		if prev, ok := doc.byteAt(off - 2); ok && prev == '\r' {
			return 2
		}
	}
	if b < utf8.RuneSelf {
		return 1
	}
	n := 1
	for n < utf8.UTFMax && off-n > 0 {
		c, _ := doc.byteAt(off - n)
		if utf8.RuneStart(c) {
			break
		}
		n++
	}
	return n
}
