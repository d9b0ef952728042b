package chunk

import "errors"

var (
	// ErrIndexOutOfBounds signals invalid byte offsets for slicing/splitting.
	ErrIndexOutOfBounds = errors.New("chunk: index out of bounds")
	// ErrSegmentIndexStale signals that a segment's Info or a pending edit
	// does not match the segment's committed content.
	ErrSegmentIndexStale = errors.New("chunk: segment index is stale")
	// ErrIllegalEdit signals an edit with an unknown operation or a
	// negative length.
	ErrIllegalEdit = errors.New("chunk: illegal edit")
)
