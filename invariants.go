package textbuf

import (
	"fmt"
	"slices"

	"github.com/npillmayer/textbuf/chunk"
)

// Check verifies the structural invariants of doc: there is at least one
// segment, segment indices are contiguous and match their segments, and the
// last index ends at the document length. No CR-LF pair spans two segments. Segments may exceed the configured
// capacity only if they cannot be split.
//
// Check is meant for tests and debugging. It returns an error wrapping
// ErrSegmentIndexStale for the first violation found.
func (doc *Document) Check() error {
	if len(doc.segments) == 0 || len(doc.segments) != len(doc.infos) {
		return fmt.Errorf("%w: %d segments, %d indices", ErrSegmentIndexStale,
			len(doc.segments), len(doc.infos))
	}
	off, pos := 0, chunk.Position{}
	total := 0
	for i := range doc.segments {
		seg, info := &doc.segments[i], doc.infos[i]
		if info.Start != off || info.StartPos != pos {
			return fmt.Errorf("%w: segment #%d starts at %d%s, predecessor ends at %d%s",
				ErrSegmentIndexStale, i, info.Start, info.StartPos, off, pos)
		}
		if info.End != info.Start+seg.Len() {
			return fmt.Errorf("%w: segment #%d holds %d bytes, index covers [%d,%d)",
				ErrSegmentIndexStale, i, seg.Len(), info.Start, info.End)
		}
		if fresh := chunk.Recompute(seg, off, pos); !equalInfo(fresh, info) {
			return fmt.Errorf("%w: line table of segment #%d", ErrSegmentIndexStale, i)
		}
		if seg.IsDirty() {
			return fmt.Errorf("%w: segment #%d has uncommitted content", ErrSegmentIndexStale, i)
		}
		if seg.Len() > doc.cfg.MaxSegmentSize && seg.SplitPoint() != 0 {
			return fmt.Errorf("%w: segment #%d holds %d bytes, capacity is %d",
				ErrSegmentIndexStale, i, seg.Len(), doc.cfg.MaxSegmentSize)
		}
		if seg.IsEmpty() && len(doc.segments) > 1 {
			return fmt.Errorf("%w: segment #%d is empty", ErrSegmentIndexStale, i)
		}
		if i > 0 && doc.segments[i-1].EndsWithCR() && seg.StartsWithLF() {
			return fmt.Errorf("%w: CR-LF torn between segments #%d and #%d",
				ErrSegmentIndexStale, i-1, i)
		}
		off, pos = info.End, info.EndPos
		total += seg.Len()
	}
	if total != doc.Len() {
		return fmt.Errorf("%w: segments hold %d bytes, document length is %d",
			ErrSegmentIndexStale, total, doc.Len())
	}
	return nil
}

func equalInfo(a, b chunk.Info) bool {
	return a.Start == b.Start && a.End == b.End &&
		a.StartPos == b.StartPos && a.EndPos == b.EndPos &&
		slices.Equal(a.Lines, b.Lines)
}
