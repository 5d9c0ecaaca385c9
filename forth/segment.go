package forth

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type segmentKind uint8

const (
	plainSegment segmentKind = iota
	definitionSegment
)

func (kind segmentKind) String() string {
	if kind == definitionSegment {
		return "definition"
	}
	return "plain"
}

// segment is a span of program text: either one whole ": ... ;"
// definition, or a run of plain code between definitions.
type segment struct {
	kind       segmentKind
	text       string
	start, end int
}

func (seg segment) fields() []string { return strings.Fields(seg.text) }

// segmentText splits text into segments in a single scan. A definition opens
// at a ":" token and closes at the first ";" token after it. The whole text
// is validated here, before anything runs.
func segmentText(text string) ([]segment, error) {
	var (
		segs []segment

		plainStart = -1 // start of the pending plain run
		plainEnd   int  // end of its last token

		defStart = -1 // start of the open definition
		defToks  int  // tokens seen in it so far
	)

	invalid := func(tok string) error {
		return &Error{Kind: InvalidWord, Token: tok, Segment: len(segs)}
	}

	flushPlain := func() {
		if plainStart >= 0 {
			segs = append(segs, segment{plainSegment, text[plainStart:plainEnd], plainStart, plainEnd})
			plainStart = -1
		}
	}

	for i := 0; i < len(text); {
		r, n := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += n
			continue
		}
		j := i + n
		for j < len(text) {
			r, n := utf8.DecodeRuneInString(text[j:])
			if unicode.IsSpace(r) {
				break
			}
			j += n
		}
		tok := text[i:j]

		switch {
		case defStart >= 0:
			defToks++
			switch tok {
			case ":":
				return nil, invalid(tok)
			case ";":
				if defToks < 3 {
					return nil, invalid(text[defStart:j])
				}
				segs = append(segs, segment{definitionSegment, text[defStart:j], defStart, j})
				defStart = -1
			}

		case tok == ":":
			flushPlain()
			defStart, defToks = i, 1

		default:
			if plainStart < 0 {
				plainStart = i
			}
			plainEnd = j
		}

		i = j
	}

	if defStart >= 0 {
		return nil, invalid(text[defStart:])
	}
	flushPlain()
	return segs, nil
}

// Unterminated reports whether text ends inside a ": ..." definition still
// lacking its closing ";", as when a definition continues on a later line.
func Unterminated(text string) bool {
	open := false
	for _, tok := range strings.Fields(text) {
		switch tok {
		case ":":
			if open {
				return false // nested, left for Eval to reject
			}
			open = true
		case ";":
			open = false
		}
	}
	return open
}
