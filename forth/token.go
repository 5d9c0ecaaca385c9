package forth

import (
	"strconv"
	"strings"
	"unicode"
)

type tokenKind uint8

const (
	identToken tokenKind = iota
	literalToken
	opToken
	stackToken
	defineToken
	endToken
)

var tokenKindNames = [...]string{
	identToken:   "ident",
	literalToken: "literal",
	opToken:      "op",
	stackToken:   "stack",
	defineToken:  "define",
	endToken:     "end",
}

func (kind tokenKind) String() string {
	if int(kind) < len(tokenKindNames) {
		return tokenKindNames[kind]
	}
	return "tokenKind(" + strconv.Itoa(int(kind)) + ")"
}

type primitive uint8

const (
	primAdd primitive = iota + 1
	primSub
	primMul
	primDiv
	primDup
	primDrop
	primSwap
	primOver
)

var primitives = map[string]primitive{
	"+":    primAdd,
	"-":    primSub,
	"*":    primMul,
	"/":    primDiv,
	"DUP":  primDup,
	"DROP": primDrop,
	"SWAP": primSwap,
	"OVER": primOver,
}

// token is one expanded word, classified once before execution.
type token struct {
	kind tokenKind
	text string
	prim primitive
	val  int32
}

func classify(text string) token {
	switch text {
	case ":":
		return token{kind: defineToken, text: text}
	case ";":
		return token{kind: endToken, text: text}
	}
	if prim, ok := primitives[text]; ok {
		kind := opToken
		if prim >= primDup {
			kind = stackToken
		}
		return token{kind: kind, text: text, prim: prim}
	}
	if val, err := parseLiteral(text); err == nil {
		return token{kind: literalToken, text: text, val: val}
	}
	return token{kind: identToken, text: text}
}

func classifyAll(fields []string) []token {
	toks := make([]token, len(fields))
	for i, field := range fields {
		toks[i] = classify(field)
	}
	return toks
}

func parseLiteral(text string) (int32, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	return int32(n), err
}

// nameSymbols are the non-alphanumeric runes allowed in a word name.
const nameSymbols = "+-*/_$.!?<>=@#%&^~'[]"

// validName reports whether name may be declared as a word: letters, digits
// and nameSymbols only, and not something that reads as an integer.
func validName(name string) bool {
	if name == "" || looksNumeric(name) {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune(nameSymbols, r) {
			return false
		}
	}
	return true
}

// looksNumeric matches an optionally signed run of decimal digits, whether
// or not it fits in an int32.
func looksNumeric(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
