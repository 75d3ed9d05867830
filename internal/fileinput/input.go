package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams, tracking the location of the last line read to facilitate
// user feedback. Streams that implement io.Closer are closed once exhausted.
type Input struct {
	Queue []io.Reader
	Last  Location

	r  io.Reader
	br *bufio.Reader
}

// Named attaches a name to a reader, for use in Locations; readers that
// already have a Name() (like *os.File) need not be wrapped.
func Named(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func (nr namedReader) Close() error {
	if cl, ok := nr.Reader.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// ReadLine returns the next line, of any length, without its line ending,
// moving on through the Queue as each stream runs out. Returns io.EOF once all
// are exhausted.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", io.EOF
		}
		line, err := in.br.ReadString('\n')
		if err == nil || (err == io.EOF && line != "") {
			in.Last.Line++
			line = strings.TrimSuffix(line, "\n")
			return strings.TrimSuffix(line, "\r"), nil
		}
		cerr := in.closeIn()
		if err != io.EOF {
			return "", errors.Wrapf(err, "reading %v", in.Last.Name)
		} else if cerr != nil {
			return "", cerr
		}
	}
}

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	if cerr := in.closeIn(); err == nil {
		err = cerr
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.r = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.br = bufio.NewReader(in.r)
	in.Last = Location{Name: nameOf(in.r)}
	return true
}

func (in *Input) closeIn() error {
	r := in.r
	in.r, in.br = nil, nil
	if cl, ok := r.(io.Closer); ok {
		return errors.Wrapf(cl.Close(), "closing %v", in.Last.Name)
	}
	return nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
