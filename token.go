package golednet

import (
	"fmt"
	"strings"
)

// UnknownTokenError is returned when a token matches none of the candidates
type UnknownTokenError struct {
	Token      string
	Candidates []string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf(`unknown token %q, expected one of: %s`, e.Token, strings.Join(e.Candidates, `, `))
}

// AmbiguousTokenError is returned when a token is a prefix of more than one
// candidate
type AmbiguousTokenError struct {
	Token   string
	Matches []string
}

func (e *AmbiguousTokenError) Error() string {
	return fmt.Sprintf(`ambiguous token %q, matches: %s`, e.Token, strings.Join(e.Matches, `, `))
}

// ResolveToken matches token against candidates, accepting any unambiguous
// prefix.  Matching is case-insensitive and an exact match always wins, even
// when it is also a prefix of another candidate.
func ResolveToken(token string, candidates []string) (string, error) {
	t := strings.ToLower(token)

	var matches []string
	for _, c := range candidates {
		if t == c {
			return c, nil
		}
		if strings.HasPrefix(c, t) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return ``, &UnknownTokenError{Token: token, Candidates: candidates}
	default:
		return ``, &AmbiguousTokenError{Token: token, Matches: matches}
	}
}

// Prefixes returns every proper prefix of name that resolves unambiguously
// against candidates, shortest first.  Candidates must include name itself.
func Prefixes(name string, candidates []string) []string {
	var prefixes []string
	for i := 1; i < len(name); i++ {
		p := name[:i]
		if resolved, err := ResolveToken(p, candidates); err == nil && resolved == name {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}
