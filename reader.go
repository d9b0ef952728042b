package textbuf

import "io"

// Reader returns a reader for the committed bytes of doc. The reader must not
// be used across a call to ApplyChanges.
func (doc *Document) Reader() io.Reader {
	return &docReader{doc: doc}
}

type docReader struct {
	doc    *Document
	cursor int
}

func (dr *docReader) Read(p []byte) (n int, err error) {
	l := len(p)
	if dr.cursor+l > dr.doc.Len() {
		l = dr.doc.Len() - dr.cursor
		if l <= 0 {
			return 0, io.EOF
		}
	}
	s, err := dr.doc.Report(dr.cursor, l)
	if err != nil {
		return 0, err
	}
	n = copy(p, s)
	dr.cursor += n
	return n, nil
}
