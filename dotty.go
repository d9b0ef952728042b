package textbuf

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Document2Dot outputs the segment chain of a document in Graphviz DOT format
// (for debugging purposes). Segments holding a cursor are highlighted.
func Document2Dot(doc *Document, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	carets := make(map[int]int)
	for _, c := range doc.cursors {
		if _, s := doc.PosIndex(c.Pos); s < len(doc.segments) {
			carets[s]++
		}
	}
	nodelist, edgelist := "", ""
	for i, seg := range doc.RangeTextSegment() {
		info := seg.Info()
		label := fmt.Sprintf("#%d [%d,%d)\\n%s…%s\\n“%s”", i, info.Start, info.End,
			info.StartPos, info.EndPos, strstart(seg.String()))
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", i, label,
			segmentDotStyles(carets[i]))
		if i > 0 {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i-1, i)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

// strstart returns an escaped prefix of text, suitable for a DOT label.
func strstart(text string) string {
	if len(text) > 10 {
		cut := 10
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "…"
	}
	r := strings.NewReplacer(`"`, `\"`, "\\", "\\\\", "\n", `\\n`, "\r", `\\r`, "\t", `\\t`)
	return r.Replace(text)
}

func segmentDotStyles(carets int) string {
	s := ",style=filled,shape=box"
	if carets > 0 {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[min(carets, len(hexhlcolors))-1])
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}
