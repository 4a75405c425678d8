package pattern

import "strings"

// Pattern is one parsed element of an address pattern. The variant set
// is closed: consumers are expected to switch exhaustively over the
// concrete types below.
type Pattern interface {
	// String renders the canonical source form of the element.
	String() string

	pattern()
}

// Literal matches its text exactly.
type Literal string

// QuestionMark matches exactly one arbitrary character.
type QuestionMark struct{}

// Wildcard matches zero or more arbitrary characters.
type Wildcard struct{}

// Bracket matches one character satisfying any of its expressions.
type Bracket struct {
	Exprs []BracketExpression
}

// InvertedBracket matches one character satisfying none of its
// expressions.
type InvertedBracket struct {
	Exprs []BracketExpression
}

// Alt matches exactly one of its two literal branches. The grammar is
// binary only: a third comma in the source ends up verbatim inside B.
type Alt struct {
	A string
	B string
}

func (Literal) pattern()         {}
func (QuestionMark) pattern()    {}
func (Wildcard) pattern()        {}
func (Bracket) pattern()         {}
func (InvertedBracket) pattern() {}
func (Alt) pattern()             {}

func (l Literal) String() string { return string(l) }

func (QuestionMark) String() string { return "?" }

func (Wildcard) String() string { return "*" }

func (b Bracket) String() string { return "[" + exprString(b.Exprs) + "]" }

func (b InvertedBracket) String() string { return "[!" + exprString(b.Exprs) + "]" }

func (a Alt) String() string { return "{" + a.A + "," + a.B + "}" }

// BracketExpression is one element of a bracket class body. Like
// Pattern, the variant set is closed.
type BracketExpression interface {
	String() string

	bracketExpression()
}

// Charset enumerates explicit characters.
type Charset []rune

// Range is an inclusive character range with alphanumeric endpoints.
// The parser accepts reversed bounds; ordering is a matcher concern.
type Range struct {
	From rune
	To   rune
}

func (Charset) bracketExpression() {}
func (Range) bracketExpression()   {}

func (c Charset) String() string { return string([]rune(c)) }

func (r Range) String() string { return string(r.From) + "-" + string(r.To) }

func exprString(exprs []BracketExpression) string {
	var sb strings.Builder
	for _, e := range exprs {
		sb.WriteString(e.String())
	}
	return sb.String()
}
