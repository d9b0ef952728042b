package textbuf

import (
	"fmt"

	"github.com/npillmayer/textbuf/chunk"
)

// resolveCollisions applies the collision policy of doc to the pending edits.
// It returns the number of edits dropped. Under policy Reject a collision
// results in ErrConflictingEdits and nothing is dropped.
//
// Edits staged by the same request (same origin) never collide with each
// other: replacing a selection stages a deletion and an insertion at the
// same offset.
func (doc *Document) resolveCollisions() (int, error) {
	switch doc.cfg.Policy {
	case LastWins:
		return doc.dropShadowed(), nil
	case Reject:
		return 0, rejectOverlaps(doc.pending.Edits())
	}
	return 0, nil
}

// dropShadowed removes every edit followed by an edit of another origin at
// the same position.
func (doc *Document) dropShadowed() int {
	edits := doc.pending.Edits()
	dropped := 0
	for i := 0; i+1 < len(edits); i++ {
		a, b := edits[i], edits[i+1]
		if a.Origin != b.Origin && a.Segment == b.Segment && a.Offset == b.Offset {
			doc.pending.Remove(a.Key())
			tracer().Debugf("last wins: dropping %s", a)
			dropped++
		}
	}
	return dropped
}

// reach is the extent of the edits of one origin seen so far.
type reach struct {
	end  int        // max end of a deletion
	at   int        // offset of the latest insertion, -1 if none
	edit chunk.Edit // edit defining end or at
}

// rejectOverlaps walks edits in document order and reports the first edit
// starting inside a range deleted by another origin, or sharing its offset
// with an edit of another origin.
func rejectOverlaps(edits []chunk.Edit) error {
	seen := make(map[uint64]*reach)
	for _, b := range edits {
		for origin, r := range seen {
			if origin == b.Origin {
				continue
			}
			if b.Offset < r.end || b.Offset == r.at {
				return fmt.Errorf("%w: %s and %s", ErrConflictingEdits, r.edit, b)
			}
		}
		r := seen[b.Origin]
		if r == nil {
			r = &reach{at: -1}
			seen[b.Origin] = r
		}
		if b.Op == chunk.Delete {
			if b.End() > r.end {
				r.end, r.edit = b.End(), b
			}
		} else {
			r.at, r.edit = b.Offset, b
		}
	}
	return nil
}
