// Command forth evaluates forth scripts and provides an interactive prompt.
//
// Usage:
//
//	forth [-trace] [-dump] [-timeout DURATION] [-i] [-history FILE] [SCRIPT...]
//
// Each line of each script file is evaluated in order, errors are logged with
// their file and line, and evaluation continues with the next line. With no
// scripts, or with -i, an interactive prompt follows.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/goforth"
	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/logio"
	"github.com/jcorbin/goforth/internal/panicerr"
)

func main() {
	var cmd command
	cmd.bind(flag.CommandLine)
	flag.Parse()

	log := logio.NewLogger(os.Stderr)
	log.ErrorIf(cmd.run(context.Background(), log, flag.Args()))
	os.Exit(log.ExitCode())
}

type command struct {
	trace       bool
	dump        bool
	timeout     time.Duration
	interactive bool
	history     string
}

func (cmd *command) bind(fs *flag.FlagSet) {
	var history string
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".goforth_history")
	}
	fs.BoolVar(&cmd.trace, "trace", false, "enable trace logging")
	fs.BoolVar(&cmd.dump, "dump", false, "dump the stack and dictionary when done")
	fs.DurationVar(&cmd.timeout, "timeout", 0, "specify a time limit")
	fs.BoolVar(&cmd.interactive, "i", false, "prompt interactively after running scripts")
	fs.StringVar(&cmd.history, "history", history, "prompt history file; empty to disable")
}

func (cmd command) run(ctx context.Context, log *logio.Logger, scripts []string) error {
	var opts []forth.Option
	if cmd.trace {
		opts = append(opts, forth.WithLogf(log.Leveledf("TRACE")))
	}
	s := session{
		Interpreter: forth.New(opts...),
		log:         log,
		out:         flushio.NewWriteFlusher(os.Stdout),
	}

	if cmd.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.timeout)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return watchSignals(ctx) })
	eg.Go(func() error {
		defer cancel()
		return panicerr.Recover("forth", func() error {
			return cmd.runSession(ctx, &s, scripts)
		})
	})
	err := eg.Wait()
	if errors.Is(err, context.DeadlineExceeded) {
		err = errors.Errorf("timed out after %v", cmd.timeout)
	}

	if cmd.dump {
		if derr := s.Dump(s.out); err == nil {
			err = derr
		}
	}
	if ferr := s.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func (cmd command) runSession(ctx context.Context, s *session, scripts []string) error {
	if len(scripts) > 0 {
		var in fileinput.Input
		defer in.Close()
		for _, name := range scripts {
			f, err := os.Open(name)
			if err != nil {
				return errors.Wrap(err, "cannot run script")
			}
			in.Queue = append(in.Queue, f)
		}
		if err := s.runScripts(ctx, &in); err != nil {
			return err
		}
		if !cmd.interactive {
			return nil
		}
	}
	return cmd.interact(ctx, s)
}

func (cmd command) interact(ctx context.Context, s *session) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(s.completeWord)

	if cmd.history != "" {
		s.log.ErrorIf(loadHistory(ln, cmd.history))
		defer func() { s.log.ErrorIf(saveHistory(ln, cmd.history)) }()
	}

	return s.repl(ctx, ln)
}

func loadHistory(ln *liner.State, name string) error {
	f, err := os.Open(name)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Wrap(err, "cannot load history")
	}
	defer f.Close()
	_, err = ln.ReadHistory(f)
	return errors.Wrapf(err, "cannot read history from %v", name)
}

func saveHistory(ln *liner.State, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "cannot save history")
	}
	if _, err := ln.WriteHistory(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "cannot write history to %v", name)
	}
	return f.Close()
}

func watchSignals(ctx context.Context) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	select {
	case <-ctx.Done():
		return nil
	case sig := <-sigs:
		return errors.Errorf("received %v", sig)
	}
}
