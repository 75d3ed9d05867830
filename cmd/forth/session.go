package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/jcorbin/goforth"
	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/logio"
)

const prompt = "> "

// session feeds lines from scripts or a prompt to an interpreter, logging
// errors and printing the stack after each successful prompted line.
type session struct {
	*forth.Interpreter
	log *logio.Logger
	out flushio.WriteFlusher
}

// lineReader is the part of *liner.State used by repl.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// runScripts evaluates every line of input, logging any error with the
// script location and carrying on with the next line.
func (s *session) runScripts(ctx context.Context, in *fileinput.Input) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := in.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := s.Evaluate(line); err != nil {
			s.log.ErrorIf(errors.WithMessagef(err, "%v", in.Last))
		}
	}
}

// repl prompts for lines until EOF, a .quit command, or ctx is done.
func (s *session) repl(ctx context.Context, lr lineReader) error {
	for {
		line, err := promptLine(ctx, lr)
		if err == liner.ErrPromptAborted {
			continue
		} else if err == io.EOF {
			fmt.Fprintln(s.out)
			return s.out.Flush()
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lr.AppendHistory(line)

		quit, err := s.handle(line)
		if ferr := s.out.Flush(); err == nil {
			err = ferr
		}
		if quit || err != nil {
			return err
		}
	}
}

// promptLine runs a prompt in its own goroutine, so that waiting on the
// user does not hold up ctx cancellation.
func promptLine(ctx context.Context, lr lineReader) (string, error) {
	type result struct {
		line string
		err  error
	}
	rc := make(chan result, 1)
	// On cancellation the prompting goroutine is abandoned; the command
	// exits soon after.
	go func() {
		line, err := lr.Prompt(prompt)
		rc <- result{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-rc:
		return r.line, r.err
	}
}

func (s *session) handle(line string) (quit bool, err error) {
	switch line {
	case ".quit":
		return true, nil
	case ".s":
		s.printStack()
	case ".words":
		fmt.Fprintln(s.out, strings.Join(s.Words(), " "))
	case ".dump":
		err = s.Dump(s.out)
	default:
		if everr := s.Evaluate(line); everr != nil {
			s.log.ErrorIf(everr)
		} else {
			s.printStack()
		}
	}
	return false, err
}

func (s *session) printStack() {
	fmt.Fprintln(s.out, s.Stack())
}

// completeWord completes the word under the cursor against the dictionary.
func (s *session) completeWord(line string, pos int) (head string, completions []string, tail string) {
	head, tail = line[:pos], line[pos:]
	i := strings.LastIndexAny(head, " \t") + 1
	head, prefix := head[:i], strings.ToUpper(head[i:])
	for _, name := range s.Words() {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name)
		}
	}
	return head, completions, tail
}
