package flushio

import (
	"bufio"
	"io"
	"io/ioutil"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher returns w itself if it already flushes, a no-op flusher
// around in-memory buffers and ioutil.Discard, or else a new bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if wf, is := w.(WriteFlusher); is {
		return wf
	}
	if w == ioutil.Discard || isBuffer(w) {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

// isBuffer matches in-memory buffers like bytes.Buffer and strings.Builder.
func isBuffer(w io.Writer) bool {
	_, is := w.(interface {
		Len() int
		Cap() int
		Grow(n int)
		Reset()
	})
	return is
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }
