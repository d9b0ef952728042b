package textbuf

import (
	"bytes"
	"slices"
	"unicode/utf8"

	"github.com/npillmayer/textbuf/chunk"
)

// Builder incrementally collects text and finalizes it into a Document.
//
// Fragments are buffered and split into segments only when Document() is
// called, so a text built from many small fragments does not end up in many
// small segments.
//
// The empty instance is a valid builder using DefaultConfig, but clients may
// use NewBuilder.
type Builder struct {
	cfg  Config
	text bytes.Buffer
	done bool
	doc  *Document
}

// NewBuilder creates a new and empty document builder.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Document returns the document built from all fragments.
//
// It is illegal to continue adding fragments after Document has been called,
// but Document may be called multiple times.
func (b *Builder) Document() (*Document, error) {
	if b == nil {
		return nil, ErrIllegalArguments
	}
	if b.doc == nil {
		cfg := b.cfg
		if cfg == (Config{}) {
			cfg = DefaultConfig
		}
		doc, err := New(b.text.String(), cfg)
		if err != nil {
			return nil, err
		}
		b.doc = doc
	}
	b.done = true
	if b.doc.IsVoid() {
		tracer().Debugf("document builder: document is void")
	}
	return b.doc, nil
}

// Reset drops the collected text and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.text.Reset()
	b.done = false
	b.doc = nil
}

// AppendString appends text.
func (b *Builder) AppendString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrDocumentCompleted
	}
	_, _ = b.text.WriteString(text)
	return nil
}

// AppendBytes appends text.
func (b *Builder) AppendBytes(text []byte) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrDocumentCompleted
	}
	_, _ = b.text.Write(text)
	return nil
}

// Len returns the number of bytes collected so far.
func (b *Builder) Len() int {
	return b.text.Len()
}

// --- Segment arena maintenance ---------------------------------------------

// splitText splits text into segment-sized pieces of at most size bytes.
//
// Boundaries are adjusted so no segment starts in the middle of a UTF-8
// sequence or between the two bytes of a CR-LF pair. Invalid UTF-8 is cut
// hard at size. An empty text results in one empty segment.
func splitText(text []byte, size int) []chunk.Segment {
	if len(text) == 0 {
		return []chunk.Segment{chunk.NewSegment("")}
	}
	parts := make([]chunk.Segment, 0, 1+len(text)/size)
	for i := 0; i < len(text); {
		end := i + size
		if end >= len(text) {
			end = len(text)
		} else {
			e := end
			for e > i && !canCut(text, e) {
				e--
			}
			if e > i {
				end = e
			}
		}
		parts = append(parts, chunk.NewSegmentBytes(text[i:end]))
		i = end
	}
	return parts
}

func canCut(text []byte, at int) bool {
	if !utf8.RuneStart(text[at]) {
		return false
	}
	return text[at-1] != '\r' || text[at] != '\n'
}

// reindex recomputes the derived indices of all segments from segment number
// from to the end of the document, seeded by the index of segment from-1.
func (doc *Document) reindex(from int) {
	from = max(from, 0)
	off, pos := 0, chunk.Position{}
	if from > 0 {
		off, pos = doc.infos[from-1].End, doc.infos[from-1].EndPos
	}
	for i := from; i < len(doc.segments); i++ {
		doc.infos[i] = chunk.Recompute(&doc.segments[i], off, pos)
		off, pos = doc.infos[i].End, doc.infos[i].EndPos
	}
	tracer().Debugf("reindexed segments #%d…#%d", from, len(doc.segments)-1)
}

// rebalance restores the size bound after a commit. Every touched segment
// which has grown beyond capacity is split, every touched segment which
// became empty is removed, as long as one segment remains. CR-LF pairs torn
// apart by an edit are re-joined.
//
// touched must be sorted. rebalance returns the number of segments created by
// splitting, the number of segments removed and the lowest segment number
// whose index needs recomputation.
func (doc *Document) rebalance(touched []int) (splits, removed, first int) {
	first = touched[0]
	size := doc.cfg.MaxSegmentSize
	// descending, so splicing does not shift segments still to visit
	for k := len(touched) - 1; k >= 0; k-- {
		s := touched[k]
		seg := doc.segments[s]
		switch {
		case seg.Len() > size:
			n := doc.splitAt(s)
			splits += n
			tracer().Debugf("split segment #%d into %d", s, n+1)
		case seg.IsEmpty() && len(doc.segments) > 1:
			doc.segments = slices.Delete(doc.segments, s, s+1)
			doc.infos = slices.Delete(doc.infos, s, s+1)
			removed++
			tracer().Debugf("removed empty segment #%d", s)
		}
	}
	for s := max(first-1, 0); s+1 < len(doc.segments); s++ {
		if !doc.segments[s].MoveTrailingCR(&doc.segments[s+1]) {
			continue
		}
		tracer().Debugf("re-joined CR-LF between #%d and #%d", s, s+1)
		first = min(first, s)
		if doc.segments[s+1].Len() > size {
			splits += doc.splitAt(s + 1)
		}
	}
	return splits, removed, min(first, len(doc.segments)-1)
}

// splitAt replaces segment s by its oversized-split parts and returns the
// number of segments added.
func (doc *Document) splitAt(s int) int {
	parts := splitOversized(doc.segments[s], doc.cfg.MaxSegmentSize)
	doc.segments = slices.Replace(doc.segments, s, s+1, parts...)
	doc.infos = slices.Insert(doc.infos, s, make([]chunk.Info, len(parts)-1)...)
	return len(parts) - 1
}

// splitOversized splits seg until every part holds at most size bytes. Parts
// which cannot be split any further are kept oversized.
func splitOversized(seg chunk.Segment, size int) []chunk.Segment {
	work := []chunk.Segment{seg}
	var parts []chunk.Segment
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		if cur.Len() <= size {
			parts = append(parts, cur)
			continue
		}
		at := cur.SplitPoint()
		if at == 0 {
			tracer().Infof("segment of %d bytes cannot be split", cur.Len())
			parts = append(parts, cur)
			continue
		}
		left, right, err := cur.Split(at)
		assert(err == nil, "splitOversized: split point out of range")
		work = append(work, right, left)
	}
	return parts
}

// dropEmpty removes all empty segments, keeping at least one. It returns the
// number of segments removed and the lowest number of a removed segment.
func (doc *Document) dropEmpty() (removed, first int) {
	first = -1
	for s := 0; s < len(doc.segments) && len(doc.segments) > 1; {
		if !doc.segments[s].IsEmpty() {
			s++
			continue
		}
		doc.segments = slices.Delete(doc.segments, s, s+1)
		doc.infos = slices.Delete(doc.infos, s, s+1)
		if first < 0 {
			first = s
		}
		removed++
	}
	return removed, first
}
