package taskextract

import (
	"reflect"
	"testing"

	"floaty/internal/core/lexicon"
)

func TestScore(t *testing.T) {
	signals := DefaultSignals(lexicon.Default())

	tests := []struct {
		in   string
		want int
		hits []string
	}{
		{
			in:   "Call the dentist tomorrow",
			want: 9,
			hits: []string{SignalAction, SignalCapital, SignalTime, SignalShortWords},
		},
		{
			in:   "- buy milk asap",
			want: 11,
			hits: []string{SignalAction, SignalPriority, SignalBullet, SignalShortWords},
		},
		{
			in:   "todo review 2 docs?",
			want: 13,
			hits: []string{SignalAction, SignalTodo, SignalQuestion, SignalDigit, SignalShortWords},
		},
		{
			in:   "the weather was lovely and we all enjoyed the long quiet afternoon",
			want: 0,
		},
	}
	for _, tc := range tests {
		got, hits := score(signals, newSegment(tc.in))
		if got != tc.want {
			t.Fatalf("score(%q) = %d, want %d (hits %v)", tc.in, got, tc.want, hits)
		}
		if !reflect.DeepEqual(hits, tc.hits) {
			t.Fatalf("hits(%q) = %#v, want %#v", tc.in, hits, tc.hits)
		}
	}
}

func TestSignals_EdgeRules(t *testing.T) {
	signals := DefaultSignals(lexicon.Default())
	byName := map[string]Signal{}
	for _, s := range signals {
		byName[s.Name] = s
	}

	tests := []struct {
		signal string
		in     string
		want   bool
	}{
		{SignalCapital, "TODO later", false},
		{SignalCapital, "Hello", true},
		{SignalBullet, "-dash without space", false},
		{SignalBullet, "• dot", true},
		{SignalTodo, "todolist", false},
		{SignalTodo, "Todo: x", true},
		{SignalTime, "afternoon tea", false},
		{SignalTime, "pay by friday", true},
		{SignalTime, "sometime this week", true},
		{SignalShortWords, "one two three four five six seven eight", true},
		{SignalShortWords, "one two three four five six seven eight nine", false},
		{SignalShortWords, "a  b  c  d  e", false},
	}
	for _, tc := range tests {
		if got := byName[tc.signal].Match(newSegment(tc.in)); got != tc.want {
			t.Fatalf("%s(%q) = %v, want %v", tc.signal, tc.in, got, tc.want)
		}
	}
}

func TestExtract_CustomSignals(t *testing.T) {
	only := []Signal{{Name: "has_milk", Weight: 1, Match: func(s Segment) bool { return s.Lower == "buy milk" }}}
	e := New(Options{Cap: 5, Signals: only})
	got := e.Extract("Buy milk. Call mom.")
	if len(got) != 1 || got[0] != "Buy milk" {
		t.Fatalf("got %#v", got)
	}
}
