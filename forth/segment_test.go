package forth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_segmentText(t *testing.T) {
	type seg struct {
		kind segmentKind
		text string
	}
	for _, tc := range []struct {
		name   string
		in     string
		expect []seg
		err    string
	}{
		{name: "empty", in: ""},
		{name: "blank", in: "  \n\t "},
		{name: "plain", in: " 1 2 + ", expect: []seg{{plainSegment, "1 2 +"}}},
		{name: "definition", in: ": foo 1 ;", expect: []seg{{definitionSegment, ": foo 1 ;"}}},
		{name: "mixed", in: "1 : foo dup ; 2 foo : bar ; 3", expect: []seg{
			{plainSegment, "1"},
			{definitionSegment, ": foo dup ;"},
			{plainSegment, "2 foo"},
			{definitionSegment, ": bar ;"},
			{plainSegment, "3"},
		}},
		{name: "adjacent definitions", in: ": a 1 ;: b 2 ; : c 3 ;", expect: []seg{
			{definitionSegment, ": a 1 ;: b 2 ;"},
			{definitionSegment, ": c 3 ;"},
		}},
		{name: "embedded colon is not a marker", in: "a:b c;", expect: []seg{{plainSegment, "a:b c;"}}},
		{name: "multi line", in: ": sq\n dup * ;\n2 sq\n", expect: []seg{
			{definitionSegment, ": sq\n dup * ;"},
			{plainSegment, "2 sq"},
		}},

		{name: "too short", in: ": ;", err: `invalid word ": ;" in segment 0`},
		{name: "unterminated", in: "1 : foo 2", err: `invalid word ": foo 2" in segment 1`},
		{name: "nested", in: ": foo : bar ;", err: `invalid word ":" in segment 0`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			segs, err := segmentText(tc.in)
			if tc.err != "" {
				require.EqualError(t, err, tc.err)
				assert.True(t, errors.Is(err, InvalidWord))
				return
			}
			require.NoError(t, err)
			var got []seg
			for _, s := range segs {
				got = append(got, seg{s.kind, s.text})
				assert.Equal(t, s.text, tc.in[s.start:s.end], "segment offsets")
			}
			assert.Equal(t, tc.expect, got)
		})
	}
}

func Test_dictionary_expand(t *testing.T) {
	dict := newDictionary()
	dict.define("FOO", []string{"1", "2"})
	dict.define("NOP", []string{})

	for _, tc := range []struct {
		name   string
		seg    segment
		expect []string
	}{
		{"plain", segment{kind: plainSegment, text: "foo dup Nop x"}, []string{"1", "2", "DUP", "X"}},
		{"name slot", segment{kind: definitionSegment, text: ": foo foo ;"}, []string{":", "FOO", "1", "2", ";"}},
		{"body", segment{kind: definitionSegment, text: ": bar foo nop foo ;"}, []string{":", "BAR", "1", "2", "1", "2", ";"}},
		{"plain second slot", segment{kind: plainSegment, text: "1 foo"}, []string{"1", "1", "2"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, dict.expand(tc.seg))
		})
	}
}

func Test_classify(t *testing.T) {
	for _, tc := range []struct {
		text string
		kind tokenKind
		prim primitive
		val  int32
	}{
		{"+", opToken, primAdd, 0},
		{"/", opToken, primDiv, 0},
		{"DUP", stackToken, primDup, 0},
		{"OVER", stackToken, primOver, 0},
		{":", defineToken, 0, 0},
		{";", endToken, 0, 0},
		{"-7", literalToken, 0, -7},
		{"+7", literalToken, 0, 7},
		{"dup", identToken, 0, 0},
		{"FOO", identToken, 0, 0},
		{"99999999999", identToken, 0, 0},
	} {
		t.Run(tc.text, func(t *testing.T) {
			tok := classify(tc.text)
			assert.Equal(t, tc.kind.String(), tok.kind.String())
			assert.Equal(t, tc.prim, tok.prim)
			assert.Equal(t, tc.val, tok.val)
		})
	}
}

func Test_validName(t *testing.T) {
	for name, valid := range map[string]bool{
		"FOO":         true,
		"DUP-TWICE":   true,
		"+":           true,
		"2DUP":        true,
		"$X.Y[1]":     true,
		"ÜBER":        true,
		"":            false,
		"1":           false,
		"-1":          false,
		"99999999999": false,
		"A,B":         false,
		":":           false,
		";":           false,
	} {
		assert.Equal(t, valid, validName(name), "validName(%q)", name)
	}
}

func TestUnterminated(t *testing.T) {
	for text, expect := range map[string]bool{
		"":                false,
		"1 2 +":           false,
		": sq":            true,
		": sq dup":        true,
		": sq dup * ;":    false,
		": a 1 ; : b":     true,
		": a : b":         false,
		"1 ; :":           true,
		": sq\n  dup *\n": true,
	} {
		assert.Equal(t, expect, Unterminated(text), "Unterminated(%q)", text)
	}
}
