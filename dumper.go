package forth

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/goforth/internal/runeio"
)

// dumper writes an Interpreter's state, one line at a time:
//
//	# Stack
//	  [1 2]
//	# Words
//	  : FOO #9 5
//	  : BAR #10 FOO#9 DUP#5
//
// Word bodies print their ops: numbers for literals, names for primitives,
// and NAME#id for calls. Since calls capture a body, not a name, an id that
// differs from the one NAME is currently defined with shows that the call
// still uses an older definition.
type dumper struct {
	in  *Interpreter
	out io.Writer

	buf bytes.Buffer
	err error
}

func (dump *dumper) dump() error {
	dump.line("# Stack")
	fmt.Fprintf(&dump.buf, "  %v", dump.in.stack)
	dump.line("")

	dump.line("# Words")
	for i, name := range dump.in.dict.names {
		dump.formatWord(name, dump.in.dict.bodies[i])
	}
	return dump.err
}

func (dump *dumper) formatWord(name string, b *body) {
	dump.buf.WriteString("  : ")
	dump.buf.WriteString(runeio.Printable(name))
	dump.buf.WriteString(" #")
	dump.buf.WriteString(strconv.FormatUint(uint64(b.id), 10))
	for _, o := range b.ops {
		dump.buf.WriteByte(' ')
		dump.buf.WriteString(runeio.Printable(o.String()))
	}
	dump.line("")
}

func (dump *dumper) line(s string) {
	dump.buf.WriteString(s)
	dump.buf.WriteByte('\n')
	if dump.err == nil {
		_, dump.err = dump.buf.WriteTo(dump.out)
	}
	dump.buf.Reset()
}
