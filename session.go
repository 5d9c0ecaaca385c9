package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jcorbin/wordforth/forth"
	"github.com/jcorbin/wordforth/internal/fileinput"
	"github.com/jcorbin/wordforth/internal/logio"
	"github.com/jcorbin/wordforth/internal/store"
)

// session is an interpreter whose state is saved into a store, if any,
// after every evaluation.
type session struct {
	*forth.Interp
	store store.Store
}

func openSession(ctx context.Context, cfg Config, log *logio.Logger) (*session, error) {
	if cfg.DB == "" {
		return newSession(ctx, cfg, log, nil)
	}
	st, err := store.NewSQLite(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open session %v: %w", cfg.DB, err)
	}
	sess, err := newSession(ctx, cfg, log, st)
	if err != nil {
		st.Close()
		return nil, err
	}
	return sess, nil
}

func newSession(ctx context.Context, cfg Config, log *logio.Logger, st store.Store) (*session, error) {
	var saved store.Session
	if st != nil {
		var err error
		if saved, err = st.Load(); err != nil {
			return nil, err
		}
	}
	interp, err := store.Restore(saved, cfg.interpOptions(log)...)
	if err != nil {
		return nil, err
	}
	sess := &session{Interp: interp, store: st}
	if len(cfg.Prelude) > 0 {
		in, err := openInput(cfg.Prelude...)
		if err != nil {
			return nil, err
		}
		if err := evalInput(ctx, in, sess.eval, stopOnError); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// eval evaluates text, then saves the session; definitions completed by a
// failed evaluation are saved too.
func (sess *session) eval(text string) error {
	err := sess.Eval(text)
	if sess.store != nil {
		if serr := sess.store.Save(store.Capture(sess.Interp)); err == nil {
			err = serr
		}
	}
	return err
}

func (sess *session) Close() error {
	if sess.store != nil {
		return sess.store.Close()
	}
	return nil
}

type locatedError struct {
	fileinput.Location
	err error
}

func (le locatedError) Error() string { return fmt.Sprintf("%v: %v", le.Location, le.err) }
func (le locatedError) Unwrap() error { return le.err }

func stopOnError(err error) error { return err }

func openInput(names ...string) (*fileinput.Input, error) {
	in := &fileinput.Input{}
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			in.Close()
			return nil, err
		}
		in.Queue = append(in.Queue, f)
	}
	return in, nil
}

// evalInput evaluates input line by line, gathering lines while a definition
// remains open. Each evaluation error, located by the line where its text
// began, is passed to handle; evaluation stops if handle returns non-nil.
func evalInput(ctx context.Context, in *fileinput.Input, eval func(string) error, handle func(error) error) error {
	defer in.Close()

	var (
		chunk strings.Builder
		at    fileinput.Location
	)
	flush := func() error {
		text := chunk.String()
		chunk.Reset()
		if err := eval(text); err != nil {
			return handle(locatedError{at, err})
		}
		return nil
	}

	for in.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if chunk.Len() > 0 && in.Scan.Name != at.Name {
			if err := flush(); err != nil {
				return err
			}
		}
		if chunk.Len() == 0 {
			at = in.Scan.Location
		} else {
			chunk.WriteByte('\n')
		}
		chunk.WriteString(in.Scan.Text)
		if forth.Unterminated(chunk.String()) {
			continue
		}
		if err := flush(); err != nil {
			return err
		}
	}
	if err := in.Err(); err != nil {
		return err
	}
	if chunk.Len() > 0 {
		return flush()
	}
	return nil
}
