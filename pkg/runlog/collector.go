// Package runlog serializes log lines from concurrently running workers
// into a single output sink. Producers submit lines through Post; one
// dedicated goroutine owns the writer, so no two lines' bytes ever
// interleave. Shutdown follows a sentinel protocol: Close enqueues a
// distinguished message once every producer has finished, and the writer
// goroutine drains the queue, writes the trailer, and flushes before Close
// returns.
package runlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

type message struct {
	text     string
	sentinel bool
}

// Collector is a multiple-producer/single-consumer log sink.
type Collector struct {
	ch     chan message
	done   chan struct{}
	w      *bufio.Writer
	closer io.Closer
	err    error
}

// New starts a collector writing to w. The caller retains ownership of w;
// Close flushes but does not close it.
func New(w io.Writer) *Collector {
	return start(w, nil)
}

// NewFile starts a collector writing to a freshly created file at path. The
// file is closed when the collector shuts down. An unwritable path is a
// systemic failure: no collector is returned.
func NewFile(path string) (*Collector, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("runlog: open %s: %w", path, err)
	}
	return start(f, f), nil
}

func start(w io.Writer, closer io.Closer) *Collector {
	c := &Collector{
		ch:     make(chan message, 64),
		done:   make(chan struct{}),
		w:      bufio.NewWriter(w),
		closer: closer,
	}
	go c.run()
	return c
}

func (c *Collector) run() {
	defer close(c.done)

	fmt.Fprintf(c.w, "--- Log started at %s ---\n", time.Now().Format(timeLayout))
	for msg := range c.ch {
		if msg.sentinel {
			break
		}
		c.w.WriteString(msg.text)
		c.w.WriteByte('\n')
	}
	fmt.Fprintf(c.w, "--- Log ended at %s ---\n", time.Now().Format(timeLayout))

	c.err = c.w.Flush()
	if c.closer != nil {
		if err := c.closer.Close(); err != nil && c.err == nil {
			c.err = err
		}
	}
}

// Post submits one line. Lines posted after shutdown are dropped rather
// than deadlocking a straggling producer.
func (c *Collector) Post(text string) {
	select {
	case c.ch <- message{text: text}:
	case <-c.done:
	}
}

// Postf formats and submits one line.
func (c *Collector) Postf(format string, args ...any) {
	c.Post(fmt.Sprintf(format, args...))
}

// Close sends the termination sentinel and blocks until the writer has
// drained the queue, flushed, and released any file sink. The caller must
// guarantee every producer has finished posting first, or trailing lines
// may be lost. Close is safe to call more than once.
func (c *Collector) Close() error {
	select {
	case c.ch <- message{sentinel: true}:
	case <-c.done:
	}
	<-c.done
	return c.err
}
