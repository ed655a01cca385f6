package taskextract

import (
	"regexp"
	"strings"

	"floaty/internal/core/lexicon"
)

// Signal is one scoring rule. A segment earns Weight when Match reports true
type Signal struct {
	Name   string
	Weight int
	Match  func(Segment) bool
}

// Signal names, also reported by Explain
const (
	SignalAction     = "action_keyword"
	SignalPriority   = "priority_keyword"
	SignalCapital    = "capitalized_start"
	SignalBullet     = "bullet_start"
	SignalTodo       = "todo_start"
	SignalQuestion   = "short_question"
	SignalTime       = "time_reference"
	SignalDigit      = "has_digit"
	SignalShortWords = "short_phrase"
)

var (
	reCapitalStart = regexp.MustCompile(`^[A-Z][a-z]+\b`)
	reTodoStart    = regexp.MustCompile(`(?i)^todo\b`)
	reTimeRef      = regexp.MustCompile(`(?i)\b(today|tomorrow|next|this week|this month|by|before|after|until)\b`)
)

// DefaultSignals returns the stock rule table bound to lx
func DefaultSignals(lx *lexicon.Lexicon) []Signal {
	action := newKeywordSet(lx.Action)
	priority := newKeywordSet(lx.Priority)

	return []Signal{
		{Name: SignalAction, Weight: 4, Match: func(s Segment) bool { return action.Any(s.Lower) }},
		{Name: SignalPriority, Weight: 3, Match: func(s Segment) bool { return priority.Any(s.Lower) }},
		{Name: SignalCapital, Weight: 2, Match: func(s Segment) bool { return reCapitalStart.MatchString(s.Trimmed) }},
		{Name: SignalBullet, Weight: 3, Match: hasBulletStart},
		{Name: SignalTodo, Weight: 5, Match: func(s Segment) bool { return reTodoStart.MatchString(s.Trimmed) }},
		{Name: SignalQuestion, Weight: 2, Match: func(s Segment) bool {
			return strings.Contains(s.Trimmed, "?") && s.Len < 100
		}},
		{Name: SignalTime, Weight: 2, Match: func(s Segment) bool { return reTimeRef.MatchString(s.Trimmed) }},
		{Name: SignalDigit, Weight: 1, Match: func(s Segment) bool { return strings.ContainsAny(s.Trimmed, "0123456789") }},
		// split on single spaces, so runs of spaces count as extra words
		{Name: SignalShortWords, Weight: 1, Match: func(s Segment) bool {
			return len(strings.Split(s.Trimmed, " ")) <= 8
		}},
	}
}

func hasBulletStart(s Segment) bool {
	return strings.HasPrefix(s.Trimmed, "- ") ||
		strings.HasPrefix(s.Trimmed, "• ") ||
		strings.HasPrefix(s.Trimmed, "* ")
}

// score sums the weights of matching signals and lists their names
func score(signals []Signal, s Segment) (int, []string) {
	total := 0
	var hit []string
	for _, sig := range signals {
		if sig.Match(s) {
			total += sig.Weight
			hit = append(hit, sig.Name)
		}
	}
	return total, hit
}
