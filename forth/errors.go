package forth

import "fmt"

// ErrorKind classifies why an evaluation was rejected.
type ErrorKind int

// Evaluation error kinds; test with errors.Is(err, forth.StackUnderflow).
const (
	DivisionByZero ErrorKind = iota + 1
	StackUnderflow
	UnknownWord
	InvalidWord
	NotPrimitiveOperator
)

var kindStrings = [...]string{
	DivisionByZero:       "division by zero",
	StackUnderflow:       "stack underflow",
	UnknownWord:          "unknown word",
	InvalidWord:          "invalid word",
	NotPrimitiveOperator: "cannot redefine primitive",
}

func (kind ErrorKind) Error() string {
	if kind > 0 && int(kind) < len(kindStrings) {
		return kindStrings[kind]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

// Error describes a rejected evaluation: what went wrong, at which token, in
// which segment of the evaluated text.
type Error struct {
	Kind    ErrorKind
	Token   string
	Segment int
}

func (err *Error) Error() string {
	if err.Token == "" {
		return fmt.Sprintf("%v in segment %v", err.Kind, err.Segment)
	}
	return fmt.Sprintf("%v %q in segment %v", err.Kind, err.Token, err.Segment)
}

func (err *Error) Unwrap() error { return err.Kind }

// haltError carries an *Error out of the machine through a panic.
type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }
