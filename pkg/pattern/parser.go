package pattern

import (
	"strings"

	"github.com/osckit/oscaddr/pkg/errors"
)

// segmentDelims ends a pattern segment. Unlike the strict address
// grammar, metacharacters are allowed inside a segment since they carry
// pattern semantics.
const segmentDelims = " \t\r\n/"

// metachars start a non-literal element within a segment.
const metachars = "*?[{"

// Parse parses a complete address pattern string such as
// "/oscillator/[0-9]/{frequency,phase}" into its ordered sequence of
// pattern elements. The whole input must consist of one or more
// "/"-prefixed, non-empty segments; anything else fails with a
// MALFORMED_PATTERN error.
//
// Segments are scanned left to right, so a segment mixing literal text
// with metacharacters yields several elements: "x?" parses as
// Literal("x") followed by QuestionMark.
func Parse(input string) ([]Pattern, error) {
	segments, err := split(input)
	if err != nil {
		return nil, err
	}

	var elems []Pattern
	for _, seg := range segments {
		toks, err := scanSegment(seg)
		if err != nil {
			return nil, err
		}
		elems = append(elems, toks...)
	}
	return elems, nil
}

// split cuts input into "/"-prefixed segments, requiring at least one
// segment and full consumption of the input.
func split(input string) ([]string, error) {
	var segments []string

	rest := input
	for strings.HasPrefix(rest, "/") {
		seg := rest[1:]
		if i := strings.IndexAny(seg, segmentDelims); i >= 0 {
			seg = seg[:i]
		}
		if seg == "" {
			break
		}
		segments = append(segments, seg)
		rest = rest[1+len(seg):]
	}

	if len(segments) == 0 {
		return nil, errors.New(errors.ErrMalformedPattern, "pattern has no segments").
			WithDetail("input", input)
	}
	if rest != "" {
		return nil, errors.Newf(errors.ErrMalformedPattern, "unparsed input at offset %d", len(input)-len(rest)).
			WithDetail("input", input).
			WithDetail("offset", len(input)-len(rest))
	}

	return segments, nil
}

// scanSegment classifies one segment into pattern elements. At each
// position the branches are tried in fixed priority order: bracket
// expression, alternation, question mark, wildcard, literal run. An
// unclosed bracket or alternation swallows the remainder as a verbatim
// literal; a closed but empty class body is a hard failure.
func scanSegment(seg string) ([]Pattern, error) {
	var toks []Pattern

	rest := seg
	for rest != "" {
		switch rest[0] {
		case '[':
			tok, after, ok, err := scanBracket(rest)
			if err != nil {
				return nil, err
			}
			if !ok {
				toks = append(toks, Literal(rest))
				return toks, nil
			}
			toks = append(toks, tok)
			rest = after

		case '{':
			tok, after, ok := scanAlt(rest)
			if !ok {
				toks = append(toks, Literal(rest))
				return toks, nil
			}
			toks = append(toks, tok)
			rest = after

		case '?':
			toks = append(toks, QuestionMark{})
			rest = rest[1:]

		case '*':
			toks = append(toks, Wildcard{})
			rest = rest[1:]

		default:
			run := rest
			if i := strings.IndexAny(rest, metachars); i >= 0 {
				run = rest[:i]
			}
			toks = append(toks, Literal(run))
			rest = rest[len(run):]
		}
	}

	return toks, nil
}

// scanBracket parses a leading "[...]" or "[!...]" expression. The class
// body runs to the first "]"; there is no escaping. ok is false when no
// closing bracket exists, letting the caller fall back to a literal.
func scanBracket(rest string) (Pattern, string, bool, error) {
	inverted := strings.HasPrefix(rest, "[!")
	bodyStart := 1
	if inverted {
		bodyStart = 2
	}

	end := strings.Index(rest[bodyStart:], "]")
	if end < 0 {
		return nil, "", false, nil
	}

	body := rest[bodyStart : bodyStart+end]
	exprs, err := parseBracketBody(body)
	if err != nil {
		return nil, "", false, err
	}

	after := rest[bodyStart+end+1:]
	if inverted {
		return InvertedBracket{Exprs: exprs}, after, true, nil
	}
	return Bracket{Exprs: exprs}, after, true, nil
}

// scanAlt parses a leading "{a,b}" alternation. The body runs to the
// first "}" and is split at its first comma; additional commas stay in
// the second branch. ok is false when the body is unclosed or carries
// no comma.
func scanAlt(rest string) (Pattern, string, bool) {
	end := strings.Index(rest, "}")
	if end < 0 {
		return nil, "", false
	}

	body := rest[1:end]
	comma := strings.Index(body, ",")
	if comma < 0 {
		return nil, "", false
	}

	return Alt{A: body[:comma], B: body[comma+1:]}, rest[end+1:], true
}
