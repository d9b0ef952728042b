package textfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textbuf"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error writing test file: %v", err)
	}
	return name
}

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text := strings.Repeat("Lorem ipsum dolor sit amet,\nconsectetur adipiscing elit. ", 40)
	name := writeFile(t, text)
	doc, err := Load(context.Background(), name, textbuf.Config{MaxSegmentSize: 16})
	if err != nil {
		t.Fatal(err.Error())
	}
	if doc.IsVoid() {
		t.Errorf("document is void, should not be")
	}
	if doc.String() != text {
		t.Errorf("loaded text differs from file content")
	}
	if err := doc.Check(); err != nil {
		t.Errorf("loaded document violates invariants: %v", err)
	}
	if doc.LineCount() != 41 {
		t.Errorf("expected 41 lines, have %d", doc.LineCount())
	}
}

func TestLoadProgress(t *testing.T) {
	text := strings.Repeat("abcdefghij", 10)
	name := writeFile(t, text)
	l := NewLoader(textbuf.Config{}, 32)
	defer l.Close()
	ch, err := l.Subscribe(context.Background(), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := l.Load(context.Background(), name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Len() != 100 {
		t.Fatalf("expected 100 bytes, have %d", doc.Len())
	}
	var last Progress
	for range 4 {
		m := <-ch
		last = m.(Progress)
	}
	if !last.Done() || last.Fragment != 3 {
		t.Errorf("expected 4 fragments, last progress is %+v", last)
	}
}

func TestLoadRejects(t *testing.T) {
	if _, err := Load(context.Background(), t.TempDir(), textbuf.Config{}); !errors.Is(err, ErrNotText) {
		t.Errorf("expected ErrNotText for a directory, have %v", err)
	}
	name := writeFile(t, "ab\x00cd")
	if _, err := Load(context.Background(), name, textbuf.Config{}); !errors.Is(err, ErrNotText) {
		t.Errorf("expected ErrNotText for binary content, have %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	name = writeFile(t, "some text")
	if _, err := Load(ctx, name, textbuf.Config{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancelled load to fail, have %v", err)
	}
}

func TestSave(t *testing.T) {
	doc := textbuf.FromString("one\r\ntwo\n")
	name := filepath.Join(t.TempDir(), "out.txt")
	if err := Save(doc, name); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(name)
	if err != nil || string(b) != doc.String() {
		t.Errorf("saved %q, %v", string(b), err)
	}
}
