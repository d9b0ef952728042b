/*
Package notify broadcasts document commits to any number of subscribers.

A Broadcaster is registered as an observer with a document. Every successful
commit is published as a Message, carrying the commit record and a small
snapshot of the document state. Subscribers receive messages on their own
goroutine; the document itself is never handed out, as documents are not safe
for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package notify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textbuf'
func tracer() tracing.Trace {
	return tracing.Select("textbuf")
}
