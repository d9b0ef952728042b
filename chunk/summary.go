package chunk

import (
	"bytes"
	"unicode/utf8"
)

// Summary aggregates segment-level text metrics.
type Summary struct {
	Bytes uint64
	Chars uint64
	Lines uint64
}

// Summary returns aggregate metrics for the committed content of s.
func (s Segment) Summary() Summary {
	return Summary{
		Bytes: uint64(len(s.content)),
		Chars: uint64(utf8.RuneCount(s.content)),
		Lines: uint64(bytes.Count(s.content, []byte{'\n'})),
	}
}

// Monoid aggregates segment summaries.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries.
func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Bytes: left.Bytes + right.Bytes,
		Chars: left.Chars + right.Chars,
		Lines: left.Lines + right.Lines,
	}
}
