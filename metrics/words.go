package metrics

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/textbuf"
)

// Span is a byte range of a document, starting at offset Pos.
type Span struct {
	Pos int
	Len int
}

// End returns the offset one past the span.
func (s Span) End() int {
	return s.Pos + s.Len
}

// Contains reports whether offset off lies inside s.
func (s Span) Contains(off int) bool {
	return off >= s.Pos && off < s.End()
}

// WordsValue holds the words found in a range of a document, in document
// order.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of words.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// WordsMetric splits text into words. A word is a maximal run of non-space
// runes; words never reach across a line terminator.
type WordsMetric struct{}

// Words returns the word metric.
func Words() WordsMetric {
	return WordsMetric{}
}

// Apply finds the words in [i,j) of doc. Besides the spans it returns the
// words concatenated, separators left out. Words are cut at the range
// borders.
func (WordsMetric) Apply(doc *textbuf.Document, i, j int) (WordsValue, string, error) {
	if i < 0 || j > doc.Len() || j < i {
		return WordsValue{}, "", fmt.Errorf("metrics.Words: %w: [%d,%d)",
			textbuf.ErrPositionOutOfRange, i, j)
	}
	if i == j {
		return WordsValue{}, "", nil
	}
	text, err := doc.Report(i, j-i)
	if err != nil {
		return WordsValue{}, "", err
	}
	v := WordsValue{Spans: scanWords(text, i)}
	var b strings.Builder
	for _, s := range v.Spans {
		b.WriteString(text[s.Pos-i : s.End()-i])
	}
	tracer().Debugf("metrics.Words: %d words in [%d,%d)", len(v.Spans), i, j)
	return v, b.String(), nil
}

// scanWords returns the word spans of text, text starting at offset base.
func scanWords(text string, base int) []Span {
	var spans []Span
	start := -1
	for k, r := range text {
		switch {
		case unicode.IsSpace(r) && start >= 0:
			spans = append(spans, Span{Pos: base + start, Len: k - start})
			start = -1
		case !unicode.IsSpace(r) && start < 0:
			start = k
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Pos: base + start, Len: len(text) - start})
	}
	return spans
}
