/*
Package widget implements a text editing widget on top of documents.

Input is consumed as values of the tagged variant Event. The Editor
translates events into staging, commit and cursor movement calls on its
document and keeps the caret of the primary cursor in view.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package widget

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuf'
func tracer() tracing.Trace {
	return tracing.Select("textbuf")
}
