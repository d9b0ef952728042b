package textfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/textbuf"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// prefetch is the number of fragments read ahead of the builder.
const prefetch = 4

// ErrNotText is returned for files which do not look like text files.
var ErrNotText = errors.New("textfile: not a text file")

// Progress is published for every fragment appended to the document.
type Progress struct {
	Fragment int   // index of the fragment, starting at 0
	Loaded   int64 // bytes loaded so far
	Size     int64 // size of the file
}

// Done reports whether the file has been loaded completely.
func (p Progress) Done() bool {
	return p.Loaded >= p.Size
}

// Loader loads text files into documents.
type Loader struct {
	cfg      textbuf.Config
	fragSize int64
	cast     *caster.Caster // broadcaster for loading progress
}

// NewLoader creates a loader producing documents configured with cfg.
// Clients may indicate a recommended fragment length. fragSize may be 0,
// letting the loader choose a sensible default per file.
func NewLoader(cfg textbuf.Config, fragSize int64) *Loader {
	return &Loader{
		cfg:      cfg,
		fragSize: fragSize,
		cast:     caster.New(nil), // we will broadcast messages when fragments are loaded
	}
}

// Subscribe returns a channel receiving a Progress message for every loaded
// fragment. The channel is closed if ctx is cancelled or the loader is closed.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, error) {
	ch, ok := l.cast.Sub(ctx, capacity)
	if !ok {
		return nil, fmt.Errorf("textfile: loader closed")
	}
	return ch, nil
}

// Close closes the loader's progress broadcasting.
func (l *Loader) Close() {
	l.cast.Close()
}

// Load reads a file, which must be a text file, and loads it as a document.
// Loading may be cancelled with ctx.
func Load(ctx context.Context, name string, cfg textbuf.Config) (*textbuf.Document, error) {
	l := NewLoader(cfg, 0)
	defer l.Close()
	return l.Load(ctx, name)
}

// Load reads a file, which must be a text file, and loads it as a document.
// Opening of the file is done synchronously, fragments are read ahead on a
// separate goroutine.
func (l *Loader) Load(ctx context.Context, name string) (*textbuf.Document, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	size := tf.info.Size()
	fragSize := l.fragSize
	if fragSize <= 0 || fragSize > tenKb {
		fragSize = defaultFragSize(size)
	}
	tracer().Debugf("textfile: loading %s, %d bytes in fragments of %d", name, size, fragSize)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	frags := make(chan fragment, prefetch)
	go loadAllFragments(ctx, tf, fragSize, frags)
	b := textbuf.NewBuilder(l.cfg)
	var loaded int64
	i := 0
	for frag := range frags {
		if frag.err != nil {
			return nil, frag.err
		}
		if bytes.IndexByte(frag.content, 0) >= 0 {
			return nil, fmt.Errorf("%w: %s contains NUL bytes", ErrNotText, name)
		}
		if err := b.AppendBytes(frag.content); err != nil {
			return nil, err
		}
		loaded += int64(len(frag.content))
		l.cast.Pub(Progress{Fragment: i, Loaded: loaded, Size: size})
		i++
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if loaded < size {
		return nil, fmt.Errorf("textfile: not all bytes loaded for %s", name)
	}
	return b.Document()
}

// Save writes the text of doc to file name, replacing its content.
func Save(doc *textbuf.Document, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	n, err := io.Copy(f, doc.Reader())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("textfile: saving %s: %w", name, err)
	}
	tracer().Debugf("textfile: saved %d bytes to %s", n, name)
	return nil
}

// textFile represents an OS file which will be loaded as a document.
type textFile struct {
	path string      // file name
	info os.FileInfo // result from Stat(path)
	file *os.File    // file handle
}

// fragment is a chunk of file content passed from the reading goroutine.
type fragment struct {
	content []byte
	err     error
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotText, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{path: name, info: fi, file: file}, nil
}

func defaultFragSize(size int64) int64 {
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments iterates over the file and sends fragments of text to ch,
// closing ch when done.
func loadAllFragments(ctx context.Context, tf *textFile, fragSize int64, ch chan<- fragment) {
	defer close(ch)
	size := tf.info.Size()
	for pos := int64(0); pos < size; pos += fragSize {
		buf := make([]byte, min(fragSize, size-pos))
		cnt, err := tf.file.ReadAt(buf, pos)
		var frag fragment
		if err != nil && err != io.EOF {
			frag.err = fmt.Errorf("textfile: error loading text fragment: %w", err)
		} else if cnt < len(buf) {
			frag.err = fmt.Errorf("textfile: not all bytes loaded for text fragment at %d", pos)
		}
		frag.content = buf[:cnt]
		select {
		case ch <- frag:
		case <-ctx.Done():
			return
		}
		if frag.err != nil {
			return
		}
	}
}
