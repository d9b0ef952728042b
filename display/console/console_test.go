package console

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textbuf"
)

func TestOutputPlain(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	defer func(nc bool) { color.NoColor = nc }(color.NoColor)
	color.NoColor = true
	doc := textbuf.FromString("Hello 世界\nsecond line is long")
	fw := NewConsoleFixedWidth(nil)
	fw.Width = 12
	var bf strings.Builder
	if err := fw.Output(doc, &bf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "1 Hello 世界\n2 second lin\n"
	if bf.String() != want {
		t.Errorf("unexpected output %q, want %q", bf.String(), want)
	}
}

func TestOutputColored(t *testing.T) {
	defer func(nc bool) { color.NoColor = nc }(color.NoColor)
	color.NoColor = false
	doc := textbuf.FromString("abc")
	doc.AddCursor(textbuf.NewCursor(textbuf.Pos(0, 1)))
	fw := NewConsoleFixedWidth(nil)
	fw.Width = 20
	var bf strings.Builder
	if err := fw.Output(doc, &bf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := bf.String()
	if !strings.Contains(out, "\x1b[7m") || !strings.Contains(out, "a") {
		t.Errorf("expected caret in reverse video, have %q", out)
	}
}
