package cronexpr

import "strings"

// Normalize collapses every run of ASCII whitespace in the expression to a
// single space and trims both ends. The result is the exact string the parser
// consumes, so column offsets in parse errors refer to it. Normalize is
// idempotent.
//
//	Normalize("  2\t4 * * *\nAsia/Shanghai  ")  // "2 4 * * * Asia/Shanghai"
func Normalize(input string) string {
	return strings.Join(strings.FieldsFunc(input, isASCIISpace), " ")
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
