/*
Package chunk provides the building blocks of a segmented text document:
bounded text segments, their derived line tables, and the set of pending
edits staged against them.

A document is partitioned into segments. Each segment owns a run of bytes
and computes, but does not apply, the effect of a batch of pending edits
(CalculateStaged). Committing swaps the staged content into place. The
derived Info of a segment records its global offset range, its starting
and ending (line, column) position, and a table of the lines it contains.
Infos are recomputed from scratch after every change, left to right, each
one seeded with the end of its predecessor.

BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package chunk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuf'
func tracer() tracing.Trace {
	return tracing.Select("textbuf")
}
