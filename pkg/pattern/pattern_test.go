package pattern_test

import (
	"testing"

	"github.com/osckit/oscaddr/pkg/errors"
	"github.com/osckit/oscaddr/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AllElementKinds(t *testing.T) {
	elems, err := pattern.Parse("/oscillator/[0-9]/*/[!1234]/{frequency,phase}/x?")
	require.NoError(t, err)

	assert.Equal(t, []pattern.Pattern{
		pattern.Literal("oscillator"),
		pattern.Bracket{Exprs: []pattern.BracketExpression{
			pattern.Range{From: '0', To: '9'},
		}},
		pattern.Wildcard{},
		pattern.InvertedBracket{Exprs: []pattern.BracketExpression{
			pattern.Charset{'1', '2', '3', '4'},
		}},
		pattern.Alt{A: "frequency", B: "phase"},
		pattern.Literal("x"),
		pattern.QuestionMark{},
	}, elems)
}

func TestParse_SegmentClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []pattern.Pattern
	}{
		{
			name:  "plain literal",
			input: "/oscillator",
			want:  []pattern.Pattern{pattern.Literal("oscillator")},
		},
		{
			name:  "lone question mark",
			input: "/?",
			want:  []pattern.Pattern{pattern.QuestionMark{}},
		},
		{
			name:  "lone wildcard",
			input: "/*",
			want:  []pattern.Pattern{pattern.Wildcard{}},
		},
		{
			name:  "embedded question mark splits the segment",
			input: "/x?",
			want:  []pattern.Pattern{pattern.Literal("x"), pattern.QuestionMark{}},
		},
		{
			name:  "question mark between literals",
			input: "/x?y",
			want:  []pattern.Pattern{pattern.Literal("x"), pattern.QuestionMark{}, pattern.Literal("y")},
		},
		{
			name:  "alternation followed by literal text",
			input: "/{frequency,phase}x",
			want:  []pattern.Pattern{pattern.Alt{A: "frequency", B: "phase"}, pattern.Literal("x")},
		},
		{
			name:  "extra comma stays in second branch",
			input: "/{a,b,c}",
			want:  []pattern.Pattern{pattern.Alt{A: "a", B: "b,c"}},
		},
		{
			name:  "alternation without comma falls back to literal",
			input: "/{ab}",
			want:  []pattern.Pattern{pattern.Literal("{ab}")},
		},
		{
			name:  "unclosed alternation falls back to literal",
			input: "/{ab,cd",
			want:  []pattern.Pattern{pattern.Literal("{ab,cd")},
		},
		{
			name:  "unclosed bracket falls back to literal",
			input: "/[abc",
			want:  []pattern.Pattern{pattern.Literal("[abc")},
		},
		{
			name:  "stray closing delimiters are literal text",
			input: "/ab]cd}e",
			want:  []pattern.Pattern{pattern.Literal("ab]cd}e")},
		},
		{
			name:  "hash and comma are literal in patterns",
			input: "/osc#1,2",
			want:  []pattern.Pattern{pattern.Literal("osc#1,2")},
		},
		{
			name:  "bracket with trailing text",
			input: "/[ab]cd",
			want: []pattern.Pattern{
				pattern.Bracket{Exprs: []pattern.BracketExpression{pattern.Charset{'a', 'b'}}},
				pattern.Literal("cd"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems, err := pattern.Parse(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.want, elems)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"bare root", "/"},
		{"only slashes", "//"},
		{"empty leading segment", "//a/b"},
		{"missing leading slash", "oscillator/*"},
		{"trailing slash", "/oscillator/*/"},
		{"embedded space", "/oscillator/no te"},
		{"empty bracket body", "/[]"},
		{"empty inverted bracket body", "/[!]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pattern.Parse(tt.input)
			require.Error(t, err)

			assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedPattern),
				"want MALFORMED_PATTERN, got %v", err)
		})
	}
}

func TestString_CanonicalForms(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"/oscillator", []string{"oscillator"}},
		{"/?", []string{"?"}},
		{"/*", []string{"*"}},
		{"/[0-9]", []string{"[0-9]"}},
		{"/[!1234]", []string{"[!1234]"}},
		{"/[a-zA-Z0-9]", []string{"[a-zA-Z0-9]"}},
		{"/{frequency,phase}", []string{"{frequency,phase}"}},
		{"/x?", []string{"x", "?"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			elems, err := pattern.Parse(tt.input)
			require.NoError(t, err)

			got := make([]string, len(elems))
			for i, e := range elems {
				got[i] = e.String()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
