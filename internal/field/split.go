package field

// split.go splits tag strings at top-level separators, allowing for brackets,
// braces and quoted strings so values can nest (eg args(a=[1,2],b={x:1}))

import (
	"fmt"
	"strings"
)

// Split splits s on the separator, ignoring separators inside strings, round
// or square brackets, or braces.  For example with a comma separator,
// "a,b(c,d),e" => ["a", "b(c,d)", "e"].  An error is returned for unmatched
// brackets or an unterminated string.
func Split(s string, sep byte) ([]string, error) {
	var parts []string
	var round, square, brace int
	var inString bool
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '(':
			round++
		case '[':
			square++
		case '{':
			brace++
		case ')':
			round--
			if round < 0 {
				return nil, fmt.Errorf("unmatched right bracket ')' in %q", s)
			}
		case ']':
			square--
			if square < 0 {
				return nil, fmt.Errorf("unmatched right square bracket ']' in %q", s)
			}
		case '}':
			brace--
			if brace < 0 {
				return nil, fmt.Errorf("unmatched right brace '}' in %q", s)
			}
		case sep:
			if round == 0 && square == 0 && brace == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if inString {
		return nil, fmt.Errorf("unmatched quote (unterminated string) in %q", s)
	}
	if round > 0 {
		return nil, fmt.Errorf("unmatched left bracket '(' in %q", s)
	}
	if square > 0 {
		return nil, fmt.Errorf("unmatched left square bracket '[' in %q", s)
	}
	if brace > 0 {
		return nil, fmt.Errorf("unmatched left brace '{' in %q", s)
	}
	return append(parts, strings.TrimSpace(s[start:])), nil
}

// bracketed returns the contents of "prefix(contents)" if s has that shape,
// split on top-level commas.  The second return value is false if s does not
// start with the prefix (not an error - just a different option).
func bracketed(s, prefix string) ([]string, bool, error) {
	if !strings.HasPrefix(s, prefix+"(") {
		return nil, false, nil
	}
	rest := s[len(prefix)+1:]
	if !strings.HasSuffix(rest, ")") {
		return nil, false, fmt.Errorf("unmatched left bracket '(' in %q", s)
	}
	inner := strings.TrimSpace(rest[:len(rest)-1])
	if inner == "" {
		return []string{}, true, nil
	}
	parts, err := Split(inner, ',')
	if err != nil {
		return nil, false, err
	}
	return parts, true, nil
}
