package logio_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jcorbin/goforth/internal/logio"
	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func Test_Logger(t *testing.T) {
	var out strings.Builder
	log := logio.NewLogger(&out)
	trace := log.Leveledf("TRACE")

	trace("> %v %v", "idle", 1)
	log.Printf("", "plain\n")
	assert.Equal(t, 0, log.ExitCode())

	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode())
	log.ErrorIf(errors.New("unknown word"))
	assert.Equal(t, 1, log.ExitCode())

	assert.Equal(t, strings.Join([]string{
		"TRACE: > idle 1",
		"plain",
		"ERROR: unknown word",
		"",
	}, "\n"), out.String())
}

func Test_Logger_writeFailure(t *testing.T) {
	log := logio.NewLogger(failWriter{})
	log.Errorf("bad")
	assert.Equal(t, 2, log.ExitCode())
	log.Errorf("worse")
	assert.Equal(t, 2, log.ExitCode(), "expected io failure to stick")
}

func Test_Writer(t *testing.T) {
	var lines []string
	lw := logio.Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}
	fmt.Fprintf(&lw, "# Stack\n  [1")
	assert.Equal(t, []string{"# Stack"}, lines)
	fmt.Fprintf(&lw, " 2]\n\n# Words")
	assert.Equal(t, []string{"# Stack", "  [1 2]", ""}, lines)
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"# Stack", "  [1 2]", "", "# Words"}, lines)
}
