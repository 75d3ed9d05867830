package forth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jcorbin/goforth/internal/logio"
	"github.com/stretchr/testify/assert"
)

type forthTestCases []forthTestCase

func (fts forthTestCases) run(t *testing.T) {
	{
		var exclusive []forthTestCase
		for _, ft := range fts {
			if ft.exclusive {
				exclusive = append(exclusive, ft)
			}
		}
		if len(exclusive) > 0 {
			fts = exclusive
		}
	}
	for _, ft := range fts {
		if !t.Run(ft.name, ft.run) {
			return
		}
	}
}

func forthTest(name string) (ft forthTestCase) {
	ft.name = name
	return ft
}

type forthTestCase struct {
	name    string
	opts    []Option
	inputs  []string
	expect  []func(t *testing.T, in *Interpreter)
	wantErr error

	exclusive bool
}

func (ft forthTestCase) apply(wraps ...func(forthTestCase) forthTestCase) forthTestCase {
	for _, wrap := range wraps {
		ft = wrap(ft)
	}
	return ft
}

func (ft forthTestCase) exclusiveTest() forthTestCase {
	ft.exclusive = true
	return ft
}

func (ft forthTestCase) withOptions(opts ...Option) forthTestCase {
	ft.opts = append(ft.opts, opts...)
	return ft
}

func (ft forthTestCase) withStack(values ...int32) forthTestCase {
	ft.opts = append(ft.opts, WithStack(values...))
	return ft
}

// withInput adds lines to evaluate, each by its own Evaluate call; every line
// but the last must succeed.
func (ft forthTestCase) withInput(lines ...string) forthTestCase {
	ft.inputs = append(ft.inputs, lines...)
	return ft
}

func (ft forthTestCase) expectError(err error) forthTestCase {
	ft.wantErr = err
	return ft
}

func (ft forthTestCase) expectStack(values ...int32) forthTestCase {
	ft.expect = append(ft.expect, func(t *testing.T, in *Interpreter) {
		if values == nil {
			values = []int32{}
		}
		assert.Equal(t, values, in.Stack(), "expected stack values")
	})
	return ft
}

func (ft forthTestCase) expectWords(names ...string) forthTestCase {
	ft.expect = append(ft.expect, func(t *testing.T, in *Interpreter) {
		words := in.Words()
		for _, name := range names {
			assert.Contains(t, words, name, "expected word %q to be defined", name)
		}
	})
	return ft
}

func (ft forthTestCase) expectBody(name string, ops ...string) forthTestCase {
	ft.expect = append(ft.expect, func(t *testing.T, in *Interpreter) {
		b, defined := in.dict.lookup(name)
		if assert.True(t, defined, "expected word %q to be defined", name) {
			var have []string
			for _, o := range b.ops {
				have = append(have, o.String())
			}
			assert.Equal(t, ops, have, "expected %v body", b)
		}
	})
	return ft
}

func (ft forthTestCase) expectDump(dump string) forthTestCase {
	ft.expect = append(ft.expect, func(t *testing.T, in *Interpreter) {
		var out strings.Builder
		assert.NoError(t, in.Dump(&out), "unexpected dump error")
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return ft
}

func (ft forthTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	in := New(ft.opts...)
	ft.runTest(t, in)
	if t.Failed() {
		ft.trace(t)
	}
}

func (ft forthTestCase) runTest(t *testing.T, in *Interpreter) {
	var err error
	for i, line := range ft.inputs {
		if err = in.Evaluate(line); err != nil {
			if i < len(ft.inputs)-1 {
				assert.NoError(t, err, "unexpected error from input[%v] %q", i, line)
				return
			}
		}
	}

	if ft.wantErr != nil {
		assert.True(t, errors.Is(err, ft.wantErr), "expected error: %v\ngot: %+v", ft.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected evaluation error")
	}

	for _, expect := range ft.expect {
		expect(t, in)
	}
}

// trace replays a failed test case through a fresh Interpreter, logging its
// trace and final state to the test.
func (ft forthTestCase) trace(t *testing.T) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()

	in := New(Options(ft.opts...), WithLogf(t.Logf))
	for _, line := range ft.inputs {
		t.Logf("evaluate %q", line)
		if err := in.Evaluate(line); err != nil {
			t.Logf("error: %v", err)
			break
		}
	}
	in.Dump(&lw)
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
