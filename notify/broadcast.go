package notify

import (
	"context"
	"errors"

	"github.com/guiguan/caster"
	"github.com/npillmayer/textbuf"
)

// ErrClosed is returned for operations on a closed broadcaster.
var ErrClosed = errors.New("notify: broadcaster closed")

// Message is published for every commit.
type Message struct {
	Seq      uint64         // running number of the commit, starting at 1
	Commit   textbuf.Commit // the commit record
	Len      int            // document length after the commit
	Lines    int            // number of lines after the commit
	Segments int            // number of segments after the commit
}

// Broadcaster publishes commits of documents to subscribers.
// Broadcaster implements interface textbuf.Observer.
type Broadcaster struct {
	cast *caster.Caster
	seq  uint64
}

// New creates a broadcaster. If ctx is cancelled, the broadcaster is closed.
func New(ctx context.Context) *Broadcaster {
	return &Broadcaster{cast: caster.New(ctx)}
}

// Committed publishes c. It is called by documents the broadcaster is
// subscribed to.
func (b *Broadcaster) Committed(doc *textbuf.Document, c textbuf.Commit) {
	b.seq++
	msg := Message{
		Seq:      b.seq,
		Commit:   c,
		Len:      doc.Len(),
		Lines:    doc.LineCount(),
		Segments: doc.SegmentCount(),
	}
	if !b.cast.Pub(msg) {
		tracer().Errorf("notify: commit #%d not published, broadcaster closed", b.seq)
	}
}

// Subscribe creates a subscription with a message buffer of the given
// capacity. The subscription ends when ctx is cancelled, when it is
// cancelled explicitly, or when the broadcaster is closed.
func (b *Broadcaster) Subscribe(ctx context.Context, capacity uint) (*Subscription, error) {
	ch, ok := b.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	return &Subscription{ch: ch, b: b}, nil
}

// Close closes the broadcaster and all of its subscriptions.
func (b *Broadcaster) Close() {
	b.cast.Close()
}

// Subscription receives commit messages.
type Subscription struct {
	ch chan interface{}
	b  *Broadcaster
}

// Next waits for the next message. ok is false if the subscription has ended
// or ctx is done.
func (s *Subscription) Next(ctx context.Context) (msg Message, ok bool) {
	select {
	case m, open := <-s.ch:
		if !open {
			return Message{}, false
		}
		msg, ok = m.(Message)
		return msg, ok
	case <-ctx.Done():
		return Message{}, false
	}
}

// Cancel ends the subscription.
func (s *Subscription) Cancel() {
	s.b.cast.Unsub(s.ch)
}
