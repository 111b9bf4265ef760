package sanitization

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	lineBreaks = regexp.MustCompile(`[\r\n]+`)
	spaces     = regexp.MustCompile(`[ \t]+`)
)

// SingleLine folds line breaks into a single space so the value is safe to
// place in a mail header
func SingleLine(input string) string {
	safe := lineBreaks.ReplaceAllString(input, " ")
	safe = spaces.ReplaceAllString(safe, " ")
	return strings.TrimSpace(safe)
}

// SanitizeEmail trims an address and drops anything that could break a header
func SanitizeEmail(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)
}

// StripControl removes control characters except newlines and tabs, which
// are kept for multi-line text such as a message body
func StripControl(input string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r == '\r' {
			return -1
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)
}
