package logio

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that passes each complete line to Logf, without
// its trailing newline; e.g. testing.T.Logf or Logger.Leveledf(...).
type Writer struct {
	Logf func(string, ...interface{})

	mu      sync.Mutex
	pending bytes.Buffer
}

// Write buffers p, logging any lines it completes.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.pending.Write(p)
	for {
		i := bytes.IndexByte(lw.pending.Bytes(), '\n')
		if i < 0 {
			break
		}
		lw.Logf("%s", lw.pending.Next(i))
		lw.pending.Next(1)
	}
	return len(p), nil
}

// Close logs any final partial line.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if lw.pending.Len() > 0 {
		lw.Logf("%s", lw.pending.Next(lw.pending.Len()))
	}
	return nil
}
