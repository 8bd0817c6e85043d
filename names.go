package optscan

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// IsAllowedInName reports whether r may appear in the name of an option:
// a Unicode letter, a Unicode decimal digit, '-' or '_'.
func IsAllowedInName(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

// readableRune renders r for diagnostics. Runes that would be invisible are shown by number.
func readableRune(r rune) string {
	if unicode.IsControl(r) || unicode.IsSpace(r) {
		return fmt.Sprintf("(Unicode scalar %d)", r)
	}

	return fmt.Sprintf("'%c'", r)
}

// scalar is one Unicode scalar value of a token together with the byte range it occupies.
// Invalid UTF-8 bytes decode to utf8.RuneError, which is never allowed in a name.
type scalar struct {
	r          rune
	start, end int
}

// scalars splits token into its Unicode scalar values
func scalars(token string) []scalar {
	seq := make([]scalar, 0, utf8.RuneCountInString(token))
	for i, r := range token {
		_, size := utf8.DecodeRuneInString(token[i:])
		seq = append(seq, scalar{r: r, start: i, end: i + size})
	}

	return seq
}

// text rebuilds the substring of token covered by seq, byte for byte
func text(token string, seq []scalar) string {
	if len(seq) == 0 {
		return ""
	}

	return token[seq[0].start:seq[len(seq)-1].end]
}
