package display

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textbuf"
)

func TestLayout(t *testing.T) {
	glyphs := Layout("a\t😀b", 4, nil)
	want := []Glyph{
		{Text: "a", Offset: 0, Col: 0, Width: 1},
		{Text: "\t", Offset: 1, Col: 1, Width: 3},
		{Text: "😀", Offset: 2, Col: 4, Width: 2},
		{Text: "b", Offset: 6, Col: 6, Width: 1},
	}
	if diff := cmp.Diff(want, glyphs); diff != "" {
		t.Fatalf("glyphs mismatch (-want +got):\n%s", diff)
	}
	if Width(glyphs) != 7 {
		t.Errorf("expected width 7, is %d", Width(glyphs))
	}
	tests := []struct{ x, col int }{
		{-1, 0}, {0, 0}, {1, 1}, {3, 1}, {4, 2}, {5, 2}, {6, 6}, {7, 7}, {20, 7},
	}
	for _, tt := range tests {
		if col := ColumnAt(glyphs, tt.x); col != tt.col {
			t.Errorf("ColumnAt(%d) = %d, want %d", tt.x, col, tt.col)
		}
	}
	for col, x := range map[int]int{0: 0, 2: 4, 4: 4, 6: 6, 7: 7, 9: 9} {
		if got := ScreenX(glyphs, col); got != x {
			t.Errorf("ScreenX(%d) = %d, want %d", col, got, x)
		}
	}
}

func TestLayoutCombining(t *testing.T) {
	glyphs := Layout("e\u0301x", 0, nil)
	if len(glyphs) != 2 || glyphs[1].Col != 1 || glyphs[1].Offset != 3 {
		t.Errorf("expected combining sequence to form one glyph, have %+v", glyphs)
	}
}

func TestRender(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	doc := textbuf.FromString("ab\ncd")
	doc.AddCursor(textbuf.NewSelection(textbuf.Pos(0, 1), textbuf.Pos(1, 0)))
	doc.AddCursor(textbuf.NewCursor(textbuf.Pos(1, 2)))
	grid := NewGrid(10, 3)
	v := &View{Gutter: true}
	v.Render(doc, grid)
	if grid.String() != "1 ab\n2 cd\n" {
		t.Errorf("unexpected grid content:\n%s", grid)
	}
	styles := []struct {
		x, y  int
		style Style
	}{
		{0, 0, StyleGutter},
		{2, 0, StyleText},
		{3, 0, StyleSelection},
		{2, 1, StyleCaret},
		{3, 1, StyleText},
		{4, 1, StyleCaret}, // caret at line end
	}
	for _, tt := range styles {
		if _, s := grid.Cell(tt.x, tt.y); s != tt.style {
			t.Errorf("cell (%d,%d) has style %s, want %s", tt.x, tt.y, s, tt.style)
		}
	}
}

func TestPositionAt(t *testing.T) {
	doc := textbuf.FromString("ab\ncd")
	v := &View{Gutter: true}
	tests := []struct {
		x, y int
		want textbuf.Position
	}{
		{3, 0, textbuf.Pos(0, 1)},
		{0, 0, textbuf.Pos(0, 0)},
		{9, 0, textbuf.Pos(0, 2)},
		{2, 1, textbuf.Pos(1, 0)},
		{0, 5, textbuf.Pos(1, 2)},
	}
	for _, tt := range tests {
		if p := v.PositionAt(doc, tt.x, tt.y); p != tt.want {
			t.Errorf("PositionAt(%d,%d) = %s, want %s", tt.x, tt.y, p, tt.want)
		}
	}
}

func TestScrollTo(t *testing.T) {
	doc := textbuf.FromString("0\n1\n2\n3\n4\n5\n6\n7\n8\n9\nlong line of text")
	v := &View{}
	v.ScrollTo(doc, textbuf.Pos(5, 0), 10, 3)
	if v.Top != 3 {
		t.Errorf("expected top line 3, is %d", v.Top)
	}
	v.ScrollTo(doc, textbuf.Pos(1, 0), 10, 3)
	if v.Top != 1 {
		t.Errorf("expected top line 1, is %d", v.Top)
	}
	v.ScrollTo(doc, textbuf.Pos(10, 12), 10, 3)
	if v.Top != 8 || v.Left != 3 {
		t.Errorf("expected viewport (8,3), is (%d,%d)", v.Top, v.Left)
	}
}
