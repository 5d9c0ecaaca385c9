package forth

import (
	"errors"
	"strings"

	"github.com/jcorbin/wordforth/internal/panicerr"
)

// Interp holds the durable state of an interpreter: its stack and its
// dictionary of defined words.
type Interp struct {
	logging
	dict   dictionary
	strict bool
	stack  []int32
}

// New returns an interpreter with an empty stack and dictionary, modified by
// any given options.
func New(opts ...Option) *Interp {
	interp := Interp{dict: newDictionary()}
	options(opts).apply(&interp)
	return &interp
}

// Stack returns a copy of the stack, bottom first.
func (interp *Interp) Stack() []int32 {
	return append([]int32(nil), interp.stack...)
}

// Words returns every defined word in name order.
func (interp *Interp) Words() []Word { return interp.dict.list() }

// Lookup returns the body of a defined word.
func (interp *Interp) Lookup(name string) ([]string, bool) {
	body, defined := interp.dict.lookup(strings.ToUpper(name))
	if !defined {
		return nil, false
	}
	return append([]string(nil), body...), true
}

// Define adds a word as if by evaluating ": NAME body... ;": the body is
// expanded against the current dictionary, so words it names are captured
// as they are defined now. The name rule and strict mode apply, and ":" or
// ";" in the body are InvalidWord.
func (interp *Interp) Define(name string, body ...string) error {
	w := Word{Name: strings.ToUpper(name), Body: body}
	if err := w.Validate(); err != nil {
		return err
	}
	if kind := classify(w.Name).kind; interp.strict && (kind == opToken || kind == stackToken) {
		return &Error{Kind: NotPrimitiveOperator, Token: w.Name}
	}
	w.Body = interp.dict.expandFields(body, -1)
	interp.dict.define(w.Name, w.Body)
	interp.logf(":", "define %v %v", w.Name, w.Body)
	return nil
}

// Eval runs a program against the interpreter. On success the stack holds
// the result; on failure the error is an *Error wrapping an ErrorKind, the
// stack is unchanged, and only definitions completed before the failure
// remain.
func (interp *Interp) Eval(text string) error {
	segs, err := segmentText(text)
	if err != nil {
		interp.logf("!", "reject %v", err)
		return err
	}

	m := machine{
		logging: &interp.logging,
		dict:    interp.dict,
		strict:  interp.strict,
		stack:   append([]int32(nil), interp.stack...),
	}
	err = panicerr.Recover("forth", func() error {
		for i, seg := range segs {
			m.seg = i
			m.runSegment(seg)
		}
		return nil
	})
	if err != nil {
		var halt haltError
		if errors.As(err, &halt) {
			err = halt.error
		}
		return err
	}

	interp.stack = m.stack
	return nil
}

func (m *machine) runSegment(seg segment) {
	fields := m.dict.expand(seg)
	m.logf("#", "%v %q => %v", seg.kind, seg.text, fields)
	defer m.withLogPrefix("\t")()
	m.run(classifyAll(fields))
}
