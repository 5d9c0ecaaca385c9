package main

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/wordforth/forth"
	"github.com/jcorbin/wordforth/internal/fileinput"
	"github.com/jcorbin/wordforth/internal/flushio"
	"github.com/jcorbin/wordforth/internal/logio"
)

// runFiles evaluates each named file in a fresh interpreter, after any
// prelude, running up to cfg.Jobs files at once. The stack each file leaves
// is written to out in argument order; a file that fails is logged instead.
func runFiles(ctx context.Context, cfg Config, log *logio.Logger, out flushio.WriteFlusher, names []string) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Jobs)

	stacks := make([][]int32, len(names))
	failed := make([]bool, len(names))
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			stack, err := runFile(ctx, cfg, log, name)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				log.ErrorIf(err)
				failed[i] = true
				return nil
			}
			stacks[i] = stack
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, name := range names {
		if !failed[i] {
			fmt.Fprintf(out, "%v: %v\n", name, formatStack(stacks[i]))
		}
	}
	return out.Flush()
}

func runFile(ctx context.Context, cfg Config, log *logio.Logger, name string) ([]int32, error) {
	in, err := openInput(append(cfg.Prelude[:len(cfg.Prelude):len(cfg.Prelude)], name)...)
	if err != nil {
		return nil, err
	}
	if cfg.Trace {
		log.Printf("TRACE", "# %v", name)
	}
	interp := forth.New(cfg.interpOptions(log)...)
	if err := evalInput(ctx, in, interp.Eval, stopOnError); err != nil {
		return nil, err
	}
	return interp.Stack(), nil
}

// runStream evaluates r into a session, reporting errors as it goes rather
// than stopping, then writes the final stack.
func runStream(ctx context.Context, sess *session, log *logio.Logger, out flushio.WriteFlusher, r io.Reader) error {
	in := &fileinput.Input{Queue: []io.Reader{r}}
	err := evalInput(ctx, in, sess.eval, func(err error) error {
		log.ErrorIf(err)
		return nil
	})
	if err != nil {
		return err
	}
	sessionDumper{out}.dumpStack(sess.Stack())
	return out.Flush()
}
