package forth

import "strings"

// Option configures an Interp at construction.
type Option interface{ apply(interp *Interp) }

type options []Option

func (opts options) apply(interp *Interp) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(interp)
		}
	}
}

// WithLogf enables trace logging through a printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStack seeds the stack, bottom first.
func WithStack(values ...int32) Option { return stackOption(values) }

// WithWords installs words exactly as given, such as a snapshot taken with
// Words: bodies are not expanded again, and strict mode does not apply since
// the words already exist. Names and bodies are uppercased; callers should
// Validate words from untrusted sources first.
func WithWords(words ...Word) Option { return wordsOption(words) }

// WithStrictPrimitives rejects definitions named like a primitive with
// NotPrimitiveOperator; by default such a word shadows the primitive.
func WithStrictPrimitives() Option { return strictOption(true) }

type withLogfn func(mess string, args ...interface{})
type stackOption []int32
type strictOption bool
type wordsOption []Word

func (logfn withLogfn) apply(interp *Interp) { interp.logfn = logfn }

func (values stackOption) apply(interp *Interp) {
	interp.stack = append(interp.stack, values...)
}

func (strict strictOption) apply(interp *Interp) { interp.strict = bool(strict) }

func (words wordsOption) apply(interp *Interp) {
	for _, w := range words {
		body := make([]string, len(w.Body))
		for i, tok := range w.Body {
			body[i] = strings.ToUpper(tok)
		}
		interp.dict.define(strings.ToUpper(w.Name), body)
	}
}
