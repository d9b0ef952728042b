package html

import (
	"io"

	"github.com/npillmayer/textbuf"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InnerText creates a document for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents). Line breaks and block-level
// elements end a line.
func InnerText(n *html.Node, cfg textbuf.Config) (*textbuf.Document, error) {
	if n == nil {
		return nil, textbuf.ErrIllegalArguments
	}
	c := &collector{b: textbuf.NewBuilder(cfg)}
	c.collectText(n)
	return c.b.Document()
}

// TextFromHTML creates a document from the textual content of an HTML fragment.
// It does not interpret layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader, cfg textbuf.Config) (*textbuf.Document, error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	c := &collector{b: textbuf.NewBuilder(cfg)}
	for _, n := range nodes {
		c.collectText(n)
	}
	doc, err := c.b.Document()
	if err == nil {
		tracer().Debugf("html: document of %d bytes from %d nodes", doc.Len(), len(nodes))
	}
	return doc, err
}

type collector struct {
	b    *textbuf.Builder
	last byte // last byte appended
}

func (c *collector) append(s string) {
	if s == "" {
		return
	}
	_ = c.b.AppendString(s)
	c.last = s[len(s)-1]
}

func (c *collector) newline() {
	if c.b.Len() > 0 && c.last != '\n' {
		c.append("\n")
	}
}

func (c *collector) collectText(n *html.Node) {
	switch n.Type {
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br:
			c.append("\n")
			return
		case atom.Script, atom.Style, atom.Head:
			return
		}
	case html.TextNode:
		c.append(n.Data)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.collectText(ch)
	}
	if n.Type == html.ElementNode && isBlock(n.DataAtom) {
		c.newline()
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Pre, atom.Blockquote, atom.Tr,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}
