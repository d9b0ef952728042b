package chunk

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MaxBase is the default maximum segment payload length in bytes.
	MaxBase = 64
	// MinSegmentSize is the smallest segment capacity a document may be
	// configured with. A segment must be able to hold one UTF-8 scalar.
	MinSegmentSize = utf8.UTFMax
)

// Segment stores a bounded run of document text.
//
// A segment carries its committed content and a staged successor. Staged
// content is computed by CalculateStaged from a set of pending edits and is
// swapped in by Commit. Between the two calls the committed content stays
// untouched, so readers always see the last committed state.
type Segment struct {
	content []byte
	staged  []byte
	dirty   bool // staged holds a result, possibly the empty one
	applied []Applied
}

// Applied describes the net effect of the edits applied at one offset, in
// terms of the content before the commit: Removed bytes starting at Offset
// were dropped and Inserted bytes were put in front of them.
type Applied struct {
	Offset   int
	Removed  int
	Inserted int
}

// NewSegment creates a segment holding text.
func NewSegment(text string) Segment {
	return Segment{content: []byte(text)}
}

// NewSegmentBytes creates a segment from a copy of text.
func NewSegmentBytes(text []byte) Segment {
	return Segment{content: append([]byte(nil), text...)}
}

// Len returns the committed text length in bytes.
func (s Segment) Len() int {
	return len(s.content)
}

// IsEmpty reports whether the committed content has no bytes.
func (s Segment) IsEmpty() bool {
	return len(s.content) == 0
}

// String returns the committed text.
func (s Segment) String() string {
	return string(s.content)
}

// Bytes returns a copied byte slice of the committed text.
func (s Segment) Bytes() []byte {
	return append([]byte(nil), s.content...)
}

// At returns the committed byte at index i.
func (s Segment) At(i int) byte {
	return s.content[i]
}

// IsDirty reports whether staged content is waiting to be committed.
func (s Segment) IsDirty() bool {
	return s.dirty
}

// Staged returns the staged text. It is empty unless the segment is dirty.
func (s Segment) Staged() string {
	return string(s.staged)
}

// Applied returns the net effect of the staged edits, ordered by offset. It
// is empty unless the segment is dirty.
func (s Segment) Applied() []Applied {
	return s.applied
}

// CalculateStaged takes every pending edit owned by segment number self and
// computes the staged content without touching the committed content.
//
// The segment walks its bytes by global offset, info.Start being the offset
// of its first byte. Edits keyed at an offset are applied in submission
// order before the byte at that offset is copied: an insert puts its text in
// front of the byte (and in front of text inserted earlier at the same
// offset), a delete first consumes text inserted earlier at that offset and
// then skips max(length, 1 rune) source bytes. An insert keyed at info.End
// appends to the segment. Edits starting inside a range deleted from an
// earlier offset are dropped.
//
// If info does not describe this segment or an edit lies outside of it,
// ErrSegmentIndexStale is returned and the segment is left clean.
func (s *Segment) CalculateStaged(pending *Pending, self int, info Info) error {
	edits := pending.Take(self)
	if info.End-info.Start != len(s.content) {
		return fmt.Errorf("%w: segment #%d holds %d bytes, index covers [%d,%d)",
			ErrSegmentIndexStale, self, len(s.content), info.Start, info.End)
	}
	grow := 0
	for _, e := range edits {
		if e.Offset < info.Start || e.Offset > info.End {
			return fmt.Errorf("%w: edit at %d outside of segment #%d [%d,%d]",
				ErrSegmentIndexStale, e.Offset, self, info.Start, info.End)
		}
		if e.Op == Insert {
			grow += len(e.Text)
		}
	}
	out := make([]byte, 0, len(s.content)+grow)
	s.applied = s.applied[:0]
	skip, k, rec := 0, 0, -1
	for i := 0; i <= len(s.content); i++ {
		off := info.Start + i
		var head []byte
		inside := skip > 0
		deleting := false
		for k < len(edits) && edits[k].Offset == off {
			e := edits[k]
			k++
			if inside {
				tracer().Debugf("segment #%d: %s at %d subsumed by deletion", self, e.Op, off)
				continue
			}
			switch e.Op {
			case Insert:
				head = append([]byte(e.Text), head...)
			case Delete:
				n := e.Length
				if n <= 0 {
					n = s.runeWidthAt(i)
				}
				if n <= len(head) {
					head = head[n:]
					continue
				}
				n -= len(head)
				head = head[:0]
				skip += n
				deleting = i < len(s.content)
			}
		}
		if len(head) > 0 || deleting {
			s.applied = append(s.applied, Applied{Offset: off, Inserted: len(head)})
			if deleting {
				rec = len(s.applied) - 1
			}
		}
		out = append(out, head...)
		if i == len(s.content) {
			break
		}
		if skip > 0 {
			skip--
			s.applied[rec].Removed++
			continue
		}
		out = append(out, s.content[i])
	}
	s.staged = out
	s.dirty = true
	return nil
}

// Commit swaps the staged content into place. It is a no-op for a segment
// which has not been staged.
func (s *Segment) Commit() {
	if !s.dirty {
		return
	}
	s.content, s.staged = s.staged, nil
	s.applied = nil
	s.dirty = false
}

// Discard drops staged content.
func (s *Segment) Discard() {
	s.staged = nil
	s.applied = nil
	s.dirty = false
}

// SplitPoint returns a byte offset near the middle of the segment at which it
// may be cut. The offset never separates a UTF-8 sequence or a CR-LF pair.
// SplitPoint returns 0 if the segment cannot be split.
func (s Segment) SplitPoint() int {
	n := len(s.content)
	if n < 2 {
		return 0
	}
	mid := n / 2
	for d := 0; d <= mid; d++ {
		if p := mid - d; s.canSplitAt(p) {
			return p
		}
		if p := mid + d; s.canSplitAt(p) {
			return p
		}
	}
	if !utf8.Valid(s.content) {
		return mid
	}
	return 0
}

// Split cuts the committed content at byte offset at.
func (s Segment) Split(at int) (Segment, Segment, error) {
	if at < 0 || at > len(s.content) {
		return Segment{}, Segment{}, ErrIndexOutOfBounds
	}
	return NewSegmentBytes(s.content[:at]), NewSegmentBytes(s.content[at:]), nil
}

// EndsWithCR reports whether the committed content ends with a carriage return.
func (s Segment) EndsWithCR() bool {
	return len(s.content) > 0 && s.content[len(s.content)-1] == '\r'
}

// StartsWithLF reports whether the committed content starts with a line feed.
func (s Segment) StartsWithLF() bool {
	return len(s.content) > 0 && s.content[0] == '\n'
}

// MoveTrailingCR moves a trailing carriage return of s to the front of next,
// re-joining a CR-LF pair an edit has torn across two segments.
func (s *Segment) MoveTrailingCR(next *Segment) bool {
	if !s.EndsWithCR() || !next.StartsWithLF() {
		return false
	}
	s.content = s.content[:len(s.content)-1]
	next.content = append([]byte{'\r'}, next.content...)
	return true
}

func (s Segment) canSplitAt(p int) bool {
	if p <= 0 || p >= len(s.content) {
		return false
	}
	if !utf8.RuneStart(s.content[p]) {
		return false
	}
	return s.content[p-1] != '\r' || s.content[p] != '\n'
}

func (s Segment) runeWidthAt(i int) int {
	if i >= len(s.content) {
		return 0
	}
	_, n := utf8.DecodeRune(s.content[i:])
	return n
}
