package forth

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// Word is a user definition: its uppercased name and its expanded body.
type Word struct {
	Name string
	Body []string
}

// Validate returns an InvalidWord error if the word could not have come from
// a ": NAME ... ;" definition: a bad name, or a marker left in its body.
func (w Word) Validate() error {
	if !validName(strings.ToUpper(w.Name)) {
		return &Error{Kind: InvalidWord, Token: w.Name}
	}
	for _, tok := range w.Body {
		if tok == ":" || tok == ";" {
			return &Error{Kind: InvalidWord, Token: tok}
		}
	}
	return nil
}

func (w Word) String() string {
	if len(w.Body) == 0 {
		return ": " + w.Name + " ;"
	}
	return ": " + w.Name + " " + strings.Join(w.Body, " ") + " ;"
}

// dictionary maps uppercased word names to their bodies, kept in name order.
type dictionary struct {
	words *treemap.Map
}

func newDictionary() dictionary {
	return dictionary{treemap.NewWithStringComparator()}
}

func (dict dictionary) lookup(name string) ([]string, bool) {
	if v, found := dict.words.Get(name); found {
		return v.([]string), true
	}
	return nil, false
}

func (dict dictionary) define(name string, body []string) {
	dict.words.Put(name, body)
}

func (dict dictionary) size() int { return dict.words.Size() }

func (dict dictionary) list() []Word {
	words := make([]Word, 0, dict.words.Size())
	it := dict.words.Iterator()
	for it.Next() {
		body := it.Value().([]string)
		words = append(words, Word{
			Name: it.Key().(string),
			Body: append([]string(nil), body...),
		})
	}
	return words
}

// expand rewrites a segment's fields for execution: every field is
// uppercased, and any that names a word is replaced by that word's body.
// The name slot of a definition is left alone, which is what allows a word
// to be redefined.
func (dict dictionary) expand(seg segment) []string {
	nameSlot := -1
	if seg.kind == definitionSegment {
		nameSlot = 1
	}
	return dict.expandFields(seg.fields(), nameSlot)
}

func (dict dictionary) expandFields(fields []string, nameSlot int) []string {
	out := make([]string, 0, len(fields))
	for i, field := range fields {
		name := strings.ToUpper(field)
		if i == nameSlot {
			out = append(out, name)
		} else if body, defined := dict.lookup(name); defined {
			out = append(out, body...)
		} else {
			out = append(out, name)
		}
	}
	return out
}
