// Package normalize prepares captured text for storage, scoring and lookup.
//
// Capture keeps the text readable: control bytes go, line structure stays.
// Fold builds a comparison key for search and duplicate detection
// 1 sanitize and drop invalid UTF-8
// 2 Unicode NFKC normalization
// 3 case folding
// 4 remove combining marks and format characters
// 5 width fold fullwidth to ASCII
// 6 collapse every whitespace run to one space and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF
			width.Fold,
		)
	},
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Capture cleans text received from the extension. Line breaks are unified to \n
// and outer whitespace is trimmed; inner spacing is left alone since the task
// extractor counts words on single spaces
func Capture(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)
	s = lineEndings.Replace(s)
	return strings.TrimSpace(s)
}

// Fold returns the comparison key of s. Equal keys mean "same text" for search
// and duplicate checks
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := foldPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		ns = strings.ToLower(s)
	}
	return OneLine(ns)
}

// OneLine collapses every whitespace run, newlines included, to a single space and trims
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Contains reports whether the folded form of s contains the folded query.
// An empty query matches everything
func Contains(s, query string) bool {
	q := Fold(query)
	if q == "" {
		return true
	}
	return strings.Contains(Fold(s), q)
}
