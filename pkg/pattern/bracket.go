package pattern

import "github.com/osckit/oscaddr/pkg/errors"

// parseBracketBody interprets the interior of a bracket expression as a
// sequence of class elements. At each position an alphanumeric range
// ("x-y") is tried first; the first position that is not a range start
// swallows the entire remainder as one Charset. A charset is never
// re-segmented into further ranges, so "[a-z0-9]" yields two ranges but
// "[ab0-9]" yields a single five-character charset.
func parseBracketBody(body string) ([]BracketExpression, error) {
	if body == "" {
		return nil, errors.New(errors.ErrMalformedPattern, "empty bracket expression")
	}

	var exprs []BracketExpression
	runes := []rune(body)
	for i := 0; i < len(runes); {
		if i+3 <= len(runes) && runes[i+1] == '-' && isAlnum(runes[i]) && isAlnum(runes[i+2]) {
			exprs = append(exprs, Range{From: runes[i], To: runes[i+2]})
			i += 3
			continue
		}
		exprs = append(exprs, Charset(append([]rune(nil), runes[i:]...)))
		break
	}

	return exprs, nil
}

func isAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
