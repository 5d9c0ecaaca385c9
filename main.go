package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"golang.org/x/term"

	"github.com/jcorbin/wordforth/internal/flushio"
	"github.com/jcorbin/wordforth/internal/logio"
)

func main() {
	log := logio.NewLogger(os.Stderr)

	cmd, err := parseCommand(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		log.Errorf("%v", err)
		os.Exit(2)
	}

	ctx := context.Background()
	if cmd.Timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	log.ErrorIf(run(ctx, cmd, log))
	if code := log.ExitCode(); code != 0 {
		os.Exit(code)
	}
}

func run(ctx context.Context, cmd command, log *logio.Logger) (rerr error) {
	out := flushio.NewWriteFlusher(os.Stdout)
	if cmd.Tee != "" {
		f, err := os.Create(cmd.Tee)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); rerr == nil {
				rerr = cerr
			}
		}()
		out = flushio.Tee(out, flushio.NewWriteFlusher(f))
	}

	if len(cmd.Files) > 0 {
		return runFiles(ctx, cmd.Config, log, out, cmd.Files)
	}

	sess, err := openSession(ctx, cmd.Config, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	switch {
	case cmd.Eval != "":
		if err := sess.eval(cmd.Eval); err != nil {
			return err
		}
		sessionDumper{out}.dumpStack(sess.Stack())
		return out.Flush()

	case term.IsTerminal(int(os.Stdin.Fd())):
		return runREPL(ctx, sess, cmd.Config)

	default:
		return runStream(ctx, sess, log, out, os.Stdin)
	}
}
