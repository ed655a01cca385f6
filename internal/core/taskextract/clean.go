package taskextract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	reBulletPrefix = regexp.MustCompile(`^[-•*]\s*`)
	reTodoPrefix   = regexp.MustCompile(`(?i)^todo\s*:?\s*`)
	reNumberPrefix = regexp.MustCompile(`^\d+[.)]\s*`)
)

const ellipsis = "..."

// Clean turns an accepted segment into the task text handed back to callers.
// Prefixes are stripped in order bullet, todo, numbering
func Clean(s string) string {
	s = reBulletPrefix.ReplaceAllLiteralString(s, "")
	s = reTodoPrefix.ReplaceAllLiteralString(s, "")
	s = reNumberPrefix.ReplaceAllLiteralString(s, "")
	s = capitalize(s)
	if runeLen(s) > maxTaskLen {
		s = truncateWords(s, maxTaskLen)
	}
	return s
}

// capitalize upper-cases the first rune unless it already is A-Z
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || (r >= 'A' && r <= 'Z') {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// truncateWords keeps the longest run of space separated words that fits in limit
// runes and appends an ellipsis when anything was cut. A first word longer than
// limit is hard cut instead of collapsing to a bare ellipsis
func truncateWords(s string, limit int) string {
	var b strings.Builder
	n := 0
	for _, w := range strings.Split(s, " ") {
		wl := runeLen(w)
		if n+1+wl > limit {
			break
		}
		if n > 0 {
			b.WriteByte(' ')
			n++
		}
		b.WriteString(w)
		n += wl
	}
	if n == 0 {
		return string([]rune(s)[:limit]) + ellipsis
	}
	if n < runeLen(s) {
		return b.String() + ellipsis
	}
	return b.String()
}

// ellipsize cuts s to limit runes, ending in an ellipsis, when it is longer
func ellipsize(s string, limit int) string {
	if runeLen(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit-len(ellipsis)]) + ellipsis
}
