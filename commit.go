package textbuf

import (
	"fmt"

	"github.com/npillmayer/textbuf/chunk"
)

// AppliedEdit is the net effect of the edits committed at one offset, in terms
// of the text before the commit.
type AppliedEdit = chunk.Applied

// Commit records the outcome of ApplyChanges.
type Commit struct {
	Edits   []AppliedEdit // in document order
	Touched []int         // segments the edits were staged against, numbered before rebalancing
	Splits  int           // segments created by splitting oversized ones
	Removed int           // empty segments removed
	Dropped int           // edits dropped by the collision policy
}

// IsEmpty reports whether the commit did not change the text.
func (c Commit) IsEmpty() bool {
	return len(c.Edits) == 0
}

// Delta returns the change of the document length.
func (c Commit) Delta() int {
	d := 0
	for _, e := range c.Edits {
		d += e.Inserted - e.Removed
	}
	return d
}

// MapOffset maps an offset of the text before the commit to the corresponding
// offset after it. Text inserted at an offset ends up in front of that
// offset; offsets inside a deleted range collapse to its start, behind any
// text inserted there.
func (c Commit) MapOffset(old int) int {
	delta := 0
	for _, e := range c.Edits {
		if e.Offset > old {
			break
		}
		if old < e.Offset+e.Removed {
			return e.Offset + delta + e.Inserted
		}
		delta += e.Inserted - e.Removed
	}
	return old + delta
}

// Observer is notified after every successful commit of a document.
type Observer interface {
	Committed(doc *Document, c Commit)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(doc *Document, c Commit)

// Committed calls f(doc, c).
func (f ObserverFunc) Committed(doc *Document, c Commit) {
	f(doc, c)
}

// Subscribe registers an observer for commits of doc.
func (doc *Document) Subscribe(o Observer) {
	if o != nil {
		doc.observers = append(doc.observers, o)
	}
}

// ApplyChanges applies all pending edits.
//
// Edits are applied in document order, segment by segment, independently of
// the order in which cursors staged them. Afterwards segments which have
// grown beyond capacity are split, segments which became empty are removed,
// and the indices of all segments from the first touched one to the document
// end are recomputed.
//
// ApplyChanges is all-or-nothing: if a collision is rejected by the policy
// or a segment index turns out to be stale, the pending edits are dropped,
// an error is returned and the document keeps its last committed state.
// Cursors are not moved; use Commit.MapOffset or CorrectCursors.
func (doc *Document) ApplyChanges() (Commit, error) {
	var commit Commit
	if doc.pending.IsEmpty() {
		return commit, nil
	}
	dropped, err := doc.resolveCollisions()
	if err != nil {
		n := doc.pending.Drain()
		tracer().Errorf("commit rejected, %d edits dropped: %v", n, err)
		return Commit{}, err
	}
	touched := doc.pending.Touched()
	for _, s := range touched {
		if s >= len(doc.segments) {
			doc.pending.Drain()
			err = fmt.Errorf("%w: edit staged against segment #%d of %d",
				ErrSegmentIndexStale, s, len(doc.segments))
			tracer().Errorf("commit rejected: %v", err)
			return Commit{}, err
		}
	}
	for _, s := range touched {
		if err := doc.segments[s].CalculateStaged(&doc.pending, s, doc.infos[s]); err != nil {
			for _, t := range touched {
				doc.segments[t].Discard()
			}
			doc.pending.Drain()
			tracer().Errorf("commit rejected: %v", err)
			return Commit{}, fmt.Errorf("%w: %w", ErrSegmentIndexStale, err)
		}
		commit.Edits = append(commit.Edits, doc.segments[s].Applied()...)
	}
	assert(doc.pending.IsEmpty(), "ApplyChanges: edits left behind")
	for _, s := range touched {
		doc.segments[s].Commit()
	}
	splits, removed, first := doc.rebalance(touched)
	doc.reindex(first)
	if n, at := doc.dropEmpty(); n > 0 {
		removed += n
		doc.reindex(at)
	}
	commit.Touched = touched
	commit.Splits, commit.Removed, commit.Dropped = splits, removed, dropped
	tracer().Debugf("committed %d edits to %d segments: %d splits, %d removed, now %d segments",
		len(commit.Edits), len(touched), splits, removed, len(doc.segments))
	for _, o := range doc.observers {
		o.Committed(doc, commit)
	}
	return commit, nil
}
