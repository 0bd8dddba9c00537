// Package flushio wraps a Core's output writer (spec.md §6's set_file_output)
// so switching it at runtime -- WithOutput replacing the discard default, or
// a caller pointing the Core at a new stream mid-run -- always has something
// safe to Flush first, whether or not the writer underneath buffers.
package flushio

import (
	"bufio"
	"io"
	"io/ioutil"
)

// WriteFlusher is a flush-able io.Writer, what Core.out is held as so the
// options package can flush the previous output writer before swapping it.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discardWriteFlusher WriteFlusher = nopFlusher{ioutil.Discard}

// NewWriteFlusher adapts w for use as a Core's output writer: a
// buffer (bytes.Buffer, strings.Builder) or ioutil.Discard never needs
// flushing and is wrapped with a noop Flush; anything already a
// WriteFlusher is passed through; everything else -- a file, a pipe, a
// net.Conn -- is wrapped in a bufio.Writer so the Core's Flush before each
// input read can force pending bytes out before a blocking read.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	// discard writer does not need flushing
	if w == ioutil.Discard {
		return discardWriteFlusher
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }
