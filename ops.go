package textbuf

import (
	"fmt"

	"github.com/npillmayer/textbuf/chunk"
)

// Change is an edit request applied at the location of every cursor.
type Change struct {
	Op   chunk.Op
	Text string // for insertions
}

// Insert creates a change inserting text at every cursor. A cursor's
// selection is replaced by text.
func Insert(text string) Change {
	return Change{Op: chunk.Insert, Text: text}
}

// Delete creates a change deleting every cursor's selection, or the
// character following a cursor without selection.
func Delete() Change {
	return Change{Op: chunk.Delete}
}

func (c Change) String() string {
	if c.Op == chunk.Insert {
		return fmt.Sprintf("insert(%q)", c.Text)
	}
	return c.Op.String()
}

// AddChange stages ch for every cursor of doc. Nothing is applied until
// ApplyChanges is called.
//
// A selection is normalized first, so its anchor may lie behind its caret.
// Ranges spanning several segments are clipped per segment, each piece being
// staged against the segment owning it. Positions no segment addresses are
// treated as the document end.
func (doc *Document) AddChange(ch Change) error {
	if ch.Op != chunk.Insert && ch.Op != chunk.Delete {
		return fmt.Errorf("%w: change %s", ErrIllegalArguments, ch)
	}
	for i, c := range doc.cursors {
		from, to := c.Selection()
		start, end := doc.stagingOffset(from), doc.stagingOffset(to)
		origin := doc.nextOrigin()
		var err error
		switch ch.Op {
		case chunk.Insert:
			err = doc.stageDelete(origin, start, end-start)
			if err == nil {
				err = doc.stageInsert(origin, start, ch.Text)
			}
		case chunk.Delete:
			if end == start {
				end = start + doc.runeWidthAt(start)
			}
			err = doc.stageDelete(origin, start, end-start)
		}
		if err != nil {
			return fmt.Errorf("cursor #%d: %w", i, err)
		}
		tracer().Debugf("cursor #%d: staged %s at [%d,%d)", i, ch, start, end)
	}
	return nil
}

// InsertAt stages the insertion of text in front of the byte at offset off.
// Offset Len() appends to the document.
func (doc *Document) InsertAt(off int, text string) error {
	if off < 0 || off > doc.Len() {
		return fmt.Errorf("%w: insert at %d of %d", ErrPositionOutOfRange, off, doc.Len())
	}
	return doc.stageInsert(doc.nextOrigin(), off, text)
}

// DeleteAt stages the deletion of n bytes starting at offset off. A length of
// 0 deletes the character at off. The range is clamped to the document end.
// Under policy Coalesce, text staged for insertion at off is deleted first.
func (doc *Document) DeleteAt(off int, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: delete of %d bytes", ErrIllegalArguments, n)
	}
	if off < 0 || off > doc.Len() {
		return fmt.Errorf("%w: delete at %d of %d", ErrPositionOutOfRange, off, doc.Len())
	}
	if n == 0 {
		n = doc.runeWidthAt(off)
	}
	return doc.stageDelete(doc.nextOrigin(), off, n)
}

// Discard drops all pending edits.
func (doc *Document) Discard() int {
	n := doc.pending.Drain()
	if n > 0 {
		tracer().Debugf("discarded %d pending edits", n)
	}
	return n
}

// Pending returns the pending edits in document order.
func (doc *Document) Pending() []chunk.Edit {
	return doc.pending.Edits()
}

func (doc *Document) nextOrigin() uint64 {
	doc.origin++
	return doc.origin
}

// stageInsert stages an insertion at off against the segment holding the
// byte at off, or against the last segment at the document end.
func (doc *Document) stageInsert(origin uint64, off int, text string) error {
	if text == "" {
		return nil
	}
	_, err := doc.pending.Stage(chunk.Edit{
		Op:      chunk.Insert,
		Offset:  off,
		Segment: doc.segmentAt(off),
		Text:    text,
		Origin:  origin,
	})
	return err
}

// stageDelete stages the deletion of n bytes starting at offset start.
//
// Under policy Coalesce a deletion first consumes text already staged for
// insertion at start, as it is applied after it. The rest of the range is
// clipped to every segment it touches and clamped to the document end.
func (doc *Document) stageDelete(origin uint64, start, n int) error {
	if n <= 0 {
		return nil
	}
	owner := doc.segmentAt(start)
	head := 0
	if doc.cfg.Policy == Coalesce {
		head = min(doc.pendingHead(owner, start), n)
	}
	end := min(start+n-head, doc.Len())
	for s := owner; s < len(doc.infos); s++ {
		info := doc.infos[s]
		if s > owner && info.Start >= end {
			break
		}
		lo, hi := max(start, info.Start), min(end, info.End)
		length := max(hi-lo, 0)
		if s == owner {
			length += head
		}
		if length == 0 {
			continue
		}
		_, err := doc.pending.Stage(chunk.Edit{
			Op:      chunk.Delete,
			Offset:  lo,
			Length:  length,
			Segment: s,
			Origin:  origin,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// pendingHead returns the number of bytes the edits pending at offset off of
// segment seg will insert in front of the byte at off.
func (doc *Document) pendingHead(seg, off int) int {
	head := 0
	for _, e := range doc.pending.Peek(seg) {
		if e.Offset != off {
			continue
		}
		switch e.Op {
		case chunk.Insert:
			head += len(e.Text)
		case chunk.Delete:
			head -= min(head, max(e.Length, 1))
		}
	}
	return head
}
