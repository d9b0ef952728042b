/*
Package textbuf implements the document model of an interactive text editing
widget: a mutable text partitioned into bounded segments, multiple
simultaneous cursors, fast translation between global byte offsets and
(line, column) positions, and deferred, batched application of edits.

Documents

A Document is created once from an initial text, which is split into
segments of bounded capacity (see package chunk). Every segment carries a
derived index: its global offset range, its starting and ending position,
and a table of the lines it contains. Position lookups walk these indices
instead of re-scanning the text.

Editing is a two-phase process:

	doc := textbuf.FromString("Hello World")
	doc.AddCursor(textbuf.NewCursor(chunk.Pos(0, 5)))
	doc.AddChange(textbuf.Insert(","))   // stage, once for every cursor
	commit, err := doc.ApplyChanges()    // apply, rebalance, reindex

Staging translates every cursor into global offsets and records pending
edits against the segments concerned. Committing applies all pending edits
in document order, never in cursor order, splits segments which have grown
beyond capacity, drops segments which became empty, and recomputes the
indices of all segments from the first touched one to the end.

A document is not safe for concurrent use. All mutation is expected to
happen on the goroutine driving the UI event loop; readers (renderers) must
not access a document during ApplyChanges.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package textbuf

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'textbuf'
func tracer() tracing.Trace {
	return tracing.Select("textbuf")
}

// DocumentError is an error type for the textbuf module
type DocumentError string

func (e DocumentError) Error() string {
	return string(e)
}

// ErrPositionOutOfRange is flagged whenever a (line, column) position or a
// byte offset does not address a location of the document.
const ErrPositionOutOfRange = DocumentError("position out of range")

// ErrSegmentIndexStale is flagged if the derived index of a segment does not
// match its content. This indicates a programming error; the commit in
// progress is rejected.
const ErrSegmentIndexStale = DocumentError("segment index is stale")

// ErrConflictingEdits is flagged by ApplyChanges under policy Reject if two
// staged edits share an offset or overlap.
const ErrConflictingEdits = DocumentError("conflicting edits")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = DocumentError("illegal arguments")

// ErrInvalidConfig is flagged for an invalid document configuration.
const ErrInvalidConfig = DocumentError("invalid configuration")

// ErrDocumentCompleted is flagged if a builder is used after its document
// has been finalized.
const ErrDocumentCompleted = DocumentError("document builder already completed")

// ErrNoSuchCursor is flagged for a cursor number not registered with a document.
const ErrNoSuchCursor = DocumentError("no such cursor")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
