/*
Command textedit is an interactive terminal editor for a single text file.

	textedit [-config file] [file]

Keys: arrows move (Shift extends the selection, Ctrl/Alt moves word-wise),
Alt-Up/Alt-Down add cursors, Ctrl-A selects all, Ctrl-S saves, Ctrl-Q quits.
Alt-click adds a cursor, Shift-click extends the selection.

The configuration file is YAML:

	max_segment_size: 64
	policy: coalesce      # coalesce | last-wins | reject
	trace_level: error    # error | info | debug
	trace_file: /tmp/textedit.log
	tab_width: 4
	gutter: true
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/textbuf"
	"github.com/npillmayer/textbuf/display"
	"github.com/npillmayer/textbuf/notify"
	"github.com/npillmayer/textbuf/textfile"
	"github.com/npillmayer/textbuf/widget"
)

func main() {
	home, _ := os.UserHomeDir()
	confPath := flag.String("config", filepath.Join(home, ".textedit.yaml"), "configuration file")
	flag.Parse()
	if err := run(*confPath, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "textedit: %v\n", err)
		os.Exit(1)
	}
}

func run(confPath, name string) error {
	conf, err := LoadConfig(confPath)
	if err != nil {
		return err
	}
	if err := setupTracing(conf); err != nil {
		return err
	}
	docConf, err := conf.DocumentConfig()
	if err != nil {
		return err
	}
	doc, err := openDocument(name, docConf)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	commits := notify.New(ctx)
	defer commits.Close()
	doc.Subscribe(commits)
	go logCommits(ctx, commits)

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err = s.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.EnablePaste()
	ed := widget.New(doc, display.View{TabWidth: conf.TabWidth, Gutter: conf.ShowGutter()})
	return loop(s, ed, name)
}

func setupTracing(conf Config) error {
	level, err := conf.Level()
	if err != nil {
		return err
	}
	if conf.TraceFile != "" {
		f, err := os.OpenFile(conf.TraceFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		log.SetOutput(f)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	return nil
}

func openDocument(name string, conf textbuf.Config) (*textbuf.Document, error) {
	if name == "" {
		return textbuf.New("", conf)
	}
	doc, err := textfile.Load(context.Background(), name, conf)
	if os.IsNotExist(err) {
		return textbuf.New("", conf)
	}
	return doc, err
}

func logCommits(ctx context.Context, b *notify.Broadcaster) {
	sub, err := b.Subscribe(ctx, 16)
	if err != nil {
		return
	}
	defer sub.Cancel()
	for {
		msg, ok := sub.Next(ctx)
		if !ok {
			return
		}
		textbuf.T().Debugf("commit #%d: %d edits, %d bytes in %d segments",
			msg.Seq, len(msg.Commit.Edits), msg.Len, msg.Segments)
	}
}

// loop runs the event loop until Ctrl-Q is pressed.
func loop(s tcell.Screen, ed *widget.Editor, name string) error {
	surface := newScreenSurface(s)
	var paste pasteBuffer
	status := ""
	for {
		draw(s, surface, ed, name, status)
		status = ""
		ev := s.PollEvent()
		var we widget.Event
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if paste.active {
				paste.add(ev.Key(), ev.Rune())
				continue
			}
			if ev.Key() == tcell.KeyCtrlQ {
				return nil
			}
			if ev.Key() == tcell.KeyCtrlS {
				status = save(ed.Document(), name)
				continue
			}
			var ok bool
			if we, ok = keyEvent(ev.Key(), ev.Rune(), ev.Modifiers()); !ok {
				continue
			}
		case *tcell.EventPaste:
			if ev.Start() {
				paste.start()
				continue
			}
			we = paste.end()
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			x, y := ev.Position()
			we = widget.Click(x, y, modifiers(ev.Modifiers()))
		case *tcell.EventResize:
			s.Sync()
			w, h := s.Size()
			we = widget.Resize(w, h-1)
		default:
			continue
		}
		if _, err := ed.Handle(we); err != nil {
			status = err.Error()
		}
	}
}

func draw(s tcell.Screen, surface display.Surface, ed *widget.Editor, name, status string) {
	w, h := s.Size()
	ed.Render(clipped{surface, h - 1})
	if c, err := ed.Document().CursorAt(0); err == nil {
		v := ed.View()
		x := v.GutterWidth(ed.Document()) +
			display.ScreenX(v.Glyphs(ed.Document(), c.Pos.Line), c.Pos.Col) - v.Left
		s.ShowCursor(x, c.Pos.Line-v.Top)
	}
	if status == "" {
		status = fmt.Sprintf("%s  %d lines  %d cursors", name, ed.Document().LineCount(),
			ed.Document().CursorCount())
	}
	bar := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, ' ', nil, bar)
	}
	for i, r := range []rune(status) {
		s.SetContent(i, h-1, r, nil, bar)
	}
	s.Show()
}

func save(doc *textbuf.Document, name string) string {
	if name == "" {
		return "no file name"
	}
	if err := textfile.Save(doc, name); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("saved %d bytes", doc.Len())
}

// clipped reserves the bottom rows of a surface for the status bar.
type clipped struct {
	display.Surface
	height int
}

func (c clipped) Size() (int, int) {
	w, _ := c.Surface.Size()
	return w, c.height
}
