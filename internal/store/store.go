// Package store persists interpreter sessions: the defined words and the
// stack, so that a later run can pick up where the last one left off.
package store

import "github.com/jcorbin/wordforth/forth"

// Session is the durable state of one interpreter.
type Session struct {
	Words []forth.Word
	Stack []int32
}

// Store is the interface for session persistence.
type Store interface {
	// Load returns the last saved session, empty if none was saved.
	Load() (Session, error)
	// Save replaces the saved session.
	Save(sess Session) error
	// Close releases resources.
	Close() error
}

// Capture takes a Session snapshot of an interpreter.
func Capture(interp *forth.Interp) Session {
	return Session{
		Words: interp.Words(),
		Stack: interp.Stack(),
	}
}

// Restore builds an interpreter holding a saved session. Saved words are
// installed as they were captured, so options such as strict primitives only
// govern definitions made after the restore.
func Restore(sess Session, opts ...forth.Option) (*forth.Interp, error) {
	for _, w := range sess.Words {
		if err := w.Validate(); err != nil {
			return nil, err
		}
	}
	opts = append(opts, forth.WithWords(sess.Words...), forth.WithStack(sess.Stack...))
	return forth.New(opts...), nil
}
