package textbuf

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/npillmayer/textbuf/chunk"
)

// Position is a (line, column) location in a document. Columns are byte
// offsets inside the logical line.
type Position = chunk.Position

// Pos is a shortcut for chunk.Pos.
func Pos(line, col int) Position {
	return chunk.Pos(line, col)
}

// Document is a mutable text partitioned into bounded segments.
//
// Segments are held in a flat arena in document order, with segment i's
// derived index at infos[i]. Segment numbers are stable between two commits
// only; pending edits reference segments by number.
//
// A document is created by FromString or New. The zero value is not usable.
type Document struct {
	cfg       Config
	segments  []chunk.Segment
	infos     []chunk.Info
	cursors   []Cursor
	pending   chunk.Pending
	origin    uint64 // last staging request
	observers []Observer
}

// PipelineState is the state of a document's edit pipeline.
type PipelineState uint8

const (
	// Idle means no edits are pending.
	Idle PipelineState = iota
	// Staged means edits are pending and will be applied by ApplyChanges.
	Staged
)

func (s PipelineState) String() string {
	if s == Staged {
		return "staged"
	}
	return "idle"
}

// FromString creates a document holding text, using DefaultConfig.
func FromString(text string) *Document {
	doc, err := New(text, DefaultConfig)
	assert(err == nil, "FromString: default configuration is invalid")
	return doc
}

// New creates a document holding text. Text is split into segments of at most
// cfg.MaxSegmentSize bytes. The document starts without cursors.
func New(text string, cfg Config) (*Document, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	doc := &Document{cfg: cfg}
	doc.segments = splitText([]byte(text), cfg.MaxSegmentSize)
	doc.infos = make([]chunk.Info, len(doc.segments))
	doc.reindex(0)
	tracer().Infof("new document: %d bytes in %d segments, %s", len(text),
		len(doc.segments), cfg.Policy)
	return doc, nil
}

// Config returns the configuration of doc.
func (doc *Document) Config() Config {
	return doc.cfg
}

// State returns the state of the edit pipeline.
func (doc *Document) State() PipelineState {
	if doc.pending.IsEmpty() {
		return Idle
	}
	return Staged
}

// Len returns the document length in bytes.
func (doc *Document) Len() int {
	return doc.infos[len(doc.infos)-1].End
}

// IsVoid reports whether the document holds no text.
func (doc *Document) IsVoid() bool {
	return doc.Len() == 0
}

// String returns the complete committed text.
func (doc *Document) String() string {
	var bf bytes.Buffer
	bf.Grow(doc.Len())
	for i := range doc.segments {
		_, _ = bf.WriteString(doc.segments[i].String())
	}
	return bf.String()
}

// Summary returns aggregate byte/rune/line counts for the document.
func (doc *Document) Summary() chunk.Summary {
	m := chunk.Monoid{}
	sum := m.Zero()
	for i := range doc.segments {
		sum = m.Add(sum, doc.segments[i].Summary())
	}
	return sum
}

// SegmentCount returns the number of segments. A document always has at least
// one segment.
func (doc *Document) SegmentCount() int {
	return len(doc.segments)
}

// Segment returns a read-only view of segment i.
func (doc *Document) Segment(i int) (TextSegment, error) {
	if i < 0 || i >= len(doc.segments) {
		return TextSegment{}, fmt.Errorf("%w: segment #%d of %d", ErrIllegalArguments,
			i, len(doc.segments))
	}
	return newTextSegment(doc.segments[i], doc.infos[i]), nil
}

// SegmentIndex returns the derived index of segment i. The line table of the
// result is shared with the document and must not be modified.
func (doc *Document) SegmentIndex(i int) (chunk.Info, error) {
	if i < 0 || i >= len(doc.infos) {
		return chunk.Info{}, fmt.Errorf("%w: segment #%d of %d", ErrIllegalArguments,
			i, len(doc.infos))
	}
	return doc.infos[i], nil
}

// RangeTextSegment returns an iterator over all segments in document order,
// together with their segment numbers.
func (doc *Document) RangeTextSegment() iter.Seq2[int, TextSegment] {
	return func(yield func(int, TextSegment) bool) {
		for i := range doc.segments {
			if !yield(i, newTextSegment(doc.segments[i], doc.infos[i])) {
				return
			}
		}
	}
}

// Report returns l bytes of committed text, starting at offset i.
func (doc *Document) Report(i, l int) (string, error) {
	if i < 0 || l < 0 || i+l > doc.Len() {
		return "", fmt.Errorf("%w: [%d,%d) of %d bytes", ErrPositionOutOfRange, i, i+l, doc.Len())
	}
	if l == 0 {
		return "", nil
	}
	var bf bytes.Buffer
	bf.Grow(l)
	for s := doc.segmentAt(i); s < len(doc.segments) && l > 0; s++ {
		info := doc.infos[s]
		lo := i - info.Start
		hi := min(info.Len(), lo+l)
		text := doc.segments[s].String()
		_, _ = bf.WriteString(text[lo:hi])
		l -= hi - lo
		i += hi - lo
	}
	return bf.String(), nil
}

// segmentAt returns the number of the segment holding the byte at offset off.
// For the document end offset the last segment is returned.
func (doc *Document) segmentAt(off int) int {
	lo, hi := 0, len(doc.infos)
	for lo < hi {
		m := (lo + hi) / 2
		if doc.infos[m].End <= off {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return min(lo, len(doc.infos)-1)
}

// byteAt returns the byte at offset off.
func (doc *Document) byteAt(off int) (byte, bool) {
	if off < 0 || off >= doc.Len() {
		return 0, false
	}
	s := doc.segmentAt(off)
	return doc.segments[s].At(off - doc.infos[s].Start), true
}
