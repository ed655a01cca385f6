package taskextract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Segment is one candidate fragment produced by a splitting strategy
type Segment struct {
	Raw     string // as split, untrimmed
	Trimmed string
	Lower   string // lowercased Trimmed, used for dictionary lookups
	Len     int    // rune count of Trimmed
}

// Pool names a splitting strategy
type Pool string

// Splitting strategies, in the order their segments are scored
const (
	PoolSentence Pool = "sentence"
	PoolLine     Pool = "line"
	PoolBullet   Pool = "bullet"
	PoolNumbered Pool = "numbered"
)

var (
	reSentenceSplit = regexp.MustCompile(`[.!?]+`)
	reLineSplit     = regexp.MustCompile(`\n+`)
	reBulletSplit   = regexp.MustCompile(`(?:\n|^)\s*[-•*]\s+`)
	reNumberedSplit = regexp.MustCompile(`(?:\n|^)\s*\d+[.)]\s+`)
)

// input is the per-call view of the text shared by scoring and the fallback tiers
type input struct {
	Raw       string // input as given
	Text      string // whitespace-trimmed input
	Sentences []Segment
	Segments  []Segment // all four pools concatenated
}

func newSegment(raw string) Segment {
	t := strings.TrimSpace(raw)
	return Segment{
		Raw:     raw,
		Trimmed: t,
		Lower:   strings.ToLower(t),
		Len:     utf8.RuneCountInString(t),
	}
}

// split applies re and keeps pieces with non-blank content
func split(re *regexp.Regexp, text string) []Segment {
	parts := re.Split(text, -1)
	out := make([]Segment, 0, len(parts))
	for _, p := range parts {
		s := newSegment(p)
		if s.Trimmed == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// segment builds the four overlapping pools for an already trimmed text.
// Raw starts out equal to text; run replaces it with the caller's input
func segment(text string) *input {
	sentences := split(reSentenceSplit, text)
	lines := split(reLineSplit, text)
	bullets := split(reBulletSplit, text)
	numbered := split(reNumberedSplit, text)

	all := make([]Segment, 0, len(sentences)+len(lines)+len(bullets)+len(numbered))
	all = append(all, sentences...)
	all = append(all, lines...)
	all = append(all, bullets...)
	all = append(all, numbered...)

	return &input{Raw: text, Text: text, Sentences: sentences, Segments: all}
}

// Split exposes a single splitting strategy, mostly for diagnostics
func Split(p Pool, text string) []string {
	var re *regexp.Regexp
	switch p {
	case PoolSentence:
		re = reSentenceSplit
	case PoolLine:
		re = reLineSplit
	case PoolBullet:
		re = reBulletSplit
	case PoolNumbered:
		re = reNumberedSplit
	default:
		return nil
	}
	segs := split(re, strings.TrimSpace(text))
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Trimmed
	}
	return out
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
