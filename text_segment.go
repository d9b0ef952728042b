package textbuf

import "github.com/npillmayer/textbuf/chunk"

// TextSegment is a read-only view of one segment of a document and its index.
//
// It is intended as a stable API surface for renderers and analytics code so
// callers do not need to depend on the segment arena.
type TextSegment struct {
	segment chunk.Segment
	info    chunk.Info
}

func newTextSegment(seg chunk.Segment, info chunk.Info) TextSegment {
	return TextSegment{
		segment: seg,
		info:    info,
	}
}

// Info returns the derived index of the segment. The line table must not be
// modified.
func (s TextSegment) Info() chunk.Info {
	return s.info
}

// Start returns the global offset of the first byte of the segment.
func (s TextSegment) Start() int {
	return s.info.Start
}

// End returns the global offset one past the last byte of the segment.
func (s TextSegment) End() int {
	return s.info.End
}

// Summary returns the segment summary (bytes/chars/lines).
func (s TextSegment) Summary() chunk.Summary {
	return s.segment.Summary()
}

// Len returns the number of bytes in this segment.
func (s TextSegment) Len() int {
	return s.segment.Len()
}

// IsEmpty reports whether the segment has no bytes.
func (s TextSegment) IsEmpty() bool {
	return s.segment.IsEmpty()
}

// String returns the segment text.
func (s TextSegment) String() string {
	return s.segment.String()
}

// Bytes returns a copied byte slice of the segment text.
func (s TextSegment) Bytes() []byte {
	return s.segment.Bytes()
}
