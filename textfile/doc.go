/*
Package textfile provides API helpers to load UTF-8 text files as documents
and to save documents back to files.

Loading reads the file in fragments on a separate goroutine (a bounded
prefetch pipeline) while the calling goroutine appends them to a document
builder. Clients interested in the progress of a large load may subscribe to
progress messages.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuf'
func tracer() tracing.Trace {
	return tracing.Select("textbuf")
}
