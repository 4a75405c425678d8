package address

import (
	"strings"

	"github.com/osckit/oscaddr/pkg/errors"
)

// reserved holds the characters that may not appear in an address
// segment. They either delimit segments or carry pattern semantics,
// which the strict address grammar rejects.
const reserved = " \t\r\n#*,/?[]{}"

// Address is a concrete destination path: zero or more container
// segments followed by exactly one method segment.
type Address struct {
	Containers []string `json:"containers"`
	Method     string   `json:"method"`
}

// Parse parses a complete address string such as "/oscillator/4/frequency".
// The whole input must consist of one or more "/"-prefixed, non-empty
// segments free of reserved characters; anything else fails with a
// MALFORMED_ADDRESS error.
func Parse(input string) (Address, error) {
	segments, err := split(input)
	if err != nil {
		return Address{}, err
	}

	last := len(segments) - 1
	return Address{
		Containers: segments[:last],
		Method:     segments[last],
	}, nil
}

// split cuts input into "/"-prefixed segments, requiring at least one
// segment and full consumption of the input.
func split(input string) ([]string, error) {
	var segments []string

	rest := input
	for strings.HasPrefix(rest, "/") {
		seg := rest[1:]
		if i := strings.IndexAny(seg, reserved); i >= 0 {
			seg = seg[:i]
		}
		if seg == "" {
			break
		}
		segments = append(segments, seg)
		rest = rest[1+len(seg):]
	}

	if len(segments) == 0 {
		return nil, errors.New(errors.ErrMalformedAddress, "address has no segments").
			WithDetail("input", input)
	}
	if rest != "" {
		return nil, errors.Newf(errors.ErrMalformedAddress, "unparsed input at offset %d", len(input)-len(rest)).
			WithDetail("input", input).
			WithDetail("offset", len(input)-len(rest))
	}

	return segments, nil
}

// Segments returns the full ordered segment list, containers first,
// method last.
func (a Address) Segments() []string {
	segs := make([]string, 0, len(a.Containers)+1)
	segs = append(segs, a.Containers...)
	return append(segs, a.Method)
}

// String renders the canonical form of the address. Parsing the result
// yields an equal Address.
func (a Address) String() string {
	return "/" + strings.Join(a.Segments(), "/")
}

// Equal reports whether two addresses name the same destination.
func (a Address) Equal(other Address) bool {
	if a.Method != other.Method || len(a.Containers) != len(other.Containers) {
		return false
	}
	for i := range a.Containers {
		if a.Containers[i] != other.Containers[i] {
			return false
		}
	}
	return true
}
