package bpe

import "strings"

// tokenizeLine normalizes a line of raw text: uppercase, then replace every
// character outside [A-Z'] with a space, then split on runs of whitespace.
// Empty lines yield no tokens.
func tokenizeLine(line string) []string {
	upper := strings.ToUpper(line)
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || r == '\'' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}
