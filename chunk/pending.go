package chunk

import (
	"fmt"
	"sort"
)

// Op is the operation of a pending edit.
type Op uint8

const (
	// Insert inserts text in front of the byte at the edit's offset.
	Insert Op = iota + 1
	// Delete removes bytes starting at the edit's offset.
	Delete
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// Edit is a staged, not yet applied insertion or deletion.
//
// Offset is a global byte offset, Segment the number of the segment owning
// the edit. For deletions Length is the number of bytes to remove, where 0
// means one rune. Seq is the submission order assigned by Pending.Stage.
// Origin groups edits staged by the same request, e.g. the deletion and
// insertion replacing a selection.
type Edit struct {
	Offset  int
	Length  int
	Segment int
	Op      Op
	Text    string
	Origin  uint64
	Seq     uint64
}

// Key identifies a pending edit.
type Key struct {
	Segment int
	Offset  int
	Seq     uint64
}

// Key returns the key of e.
func (e Edit) Key() Key {
	return Key{Segment: e.Segment, Offset: e.Offset, Seq: e.Seq}
}

// End returns the offset one past the last source byte e removes. For
// inserts End equals Offset. Zero-length deletions count as one byte.
func (e Edit) End() int {
	if e.Op != Delete {
		return e.Offset
	}
	return e.Offset + max(e.Length, 1)
}

func (e Edit) String() string {
	if e.Op == Insert {
		return fmt.Sprintf("#%d insert %q @%d/seg%d", e.Seq, e.Text, e.Offset, e.Segment)
	}
	return fmt.Sprintf("#%d delete %d @%d/seg%d", e.Seq, e.Length, e.Offset, e.Segment)
}

// Pending is the set of staged edits of a document.
//
// Edits are keyed by (segment, offset, submission order), thus two edits
// staged at the same offset never overwrite each other. How colliding edits
// are resolved is up to the owner of the set.
//
// The zero value is an empty set ready to use.
type Pending struct {
	edits map[Key]Edit
	seq   uint64
}

// NewPending creates an empty set of pending edits.
func NewPending() *Pending {
	return &Pending{edits: make(map[Key]Edit)}
}

// Stage adds an edit to the set and returns its key. The submission order of
// the edit is assigned by Stage.
func (p *Pending) Stage(e Edit) (Key, error) {
	if e.Op != Insert && e.Op != Delete {
		return Key{}, fmt.Errorf("%w: %s", ErrIllegalEdit, e.Op)
	}
	if e.Length < 0 || e.Offset < 0 || e.Segment < 0 {
		return Key{}, fmt.Errorf("%w: %s", ErrIllegalEdit, e)
	}
	if p.edits == nil {
		p.edits = make(map[Key]Edit)
	}
	p.seq++
	e.Seq = p.seq
	p.edits[e.Key()] = e
	return e.Key(), nil
}

// Len returns the number of pending edits.
func (p *Pending) Len() int {
	if p == nil {
		return 0
	}
	return len(p.edits)
}

// IsEmpty reports whether no edits are pending.
func (p *Pending) IsEmpty() bool {
	return p.Len() == 0
}

// Touched returns the numbers of all segments owning a pending edit, in
// ascending order.
func (p *Pending) Touched() []int {
	if p.IsEmpty() {
		return nil
	}
	seen := make(map[int]struct{}, len(p.edits))
	segs := make([]int, 0, len(p.edits))
	for k := range p.edits {
		if _, ok := seen[k.Segment]; !ok {
			seen[k.Segment] = struct{}{}
			segs = append(segs, k.Segment)
		}
	}
	sort.Ints(segs)
	return segs
}

// Edits returns all pending edits in document order: by segment, offset and
// submission order.
func (p *Pending) Edits() []Edit {
	if p.IsEmpty() {
		return nil
	}
	all := make([]Edit, 0, len(p.edits))
	for _, e := range p.edits {
		all = append(all, e)
	}
	sortEdits(all)
	return all
}

// Peek returns the edits owned by segment seg in offset and submission order,
// leaving them in the set.
func (p *Pending) Peek(seg int) []Edit {
	if p.IsEmpty() {
		return nil
	}
	var edits []Edit
	for k, e := range p.edits {
		if k.Segment == seg {
			edits = append(edits, e)
		}
	}
	sortEdits(edits)
	return edits
}

// Take removes the edits owned by segment seg from the set and returns them in
// offset and submission order.
func (p *Pending) Take(seg int) []Edit {
	edits := p.Peek(seg)
	for _, e := range edits {
		delete(p.edits, e.Key())
	}
	return edits
}

// Remove drops a single edit. It reports whether the edit was pending.
func (p *Pending) Remove(k Key) bool {
	if p.IsEmpty() {
		return false
	}
	_, ok := p.edits[k]
	delete(p.edits, k)
	return ok
}

// Drain drops all pending edits and returns how many were dropped.
func (p *Pending) Drain() int {
	n := p.Len()
	if n > 0 {
		clear(p.edits)
	}
	return n
}

func sortEdits(edits []Edit) {
	sort.Slice(edits, func(i, j int) bool {
		a, b := edits[i], edits[j]
		if a.Segment != b.Segment {
			return a.Segment < b.Segment
		}
		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}
		return a.Seq < b.Seq
	})
}
