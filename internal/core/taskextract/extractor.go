// Package taskextract finds probable action items in free-form captured text.
//
// Pipeline
// 1 split the trimmed text into sentence, line, bullet and numbered pools
// 2 drop segments shorter than 3 or longer than 200 runes
// 3 score each segment against a table of weighted signals, accept score >= 1
// 4 clean accepted segments (strip markers, capitalize, truncate at 120)
// 5 dedupe in first-seen order and cap
// 6 when nothing was accepted, try the fallback tiers in order
//
// An Extractor is immutable after New and safe for concurrent use
package taskextract

import (
	"strings"

	"floaty/internal/core/lexicon"
	perr "floaty/internal/platform/errors"
)

const (
	minSegmentLen = 3
	maxSegmentLen = 200
	minTaskLen    = 3
	maxTaskLen    = 120
	acceptScore   = 1

	// DefaultCap bounds the result of the fullest variant
	DefaultCap = 8
	// PopupCap bounds the lighter UI variant
	PopupCap = 3
)

// Options configures an Extractor
type Options struct {
	// Cap is the maximum number of tasks returned, DefaultCap when <= 0
	Cap int
	// UltimateFallback enables the final "Review: ..." tier so any non-blank input yields a task
	UltimateFallback bool
	// Lexicon overrides the embedded keyword dictionaries
	Lexicon *lexicon.Lexicon
	// Signals overrides the stock rule table built from Lexicon
	Signals []Signal
}

// Default is the fullest variant: cap 8 with every fallback tier
func Default() Options { return Options{Cap: DefaultCap, UltimateFallback: true} }

// Background mirrors the capture worker: cap 8, no ultimate fallback
func Background() Options { return Options{Cap: DefaultCap} }

// Popup mirrors the UI variant: cap 3 with the ultimate fallback
func Popup() Options { return Options{Cap: PopupCap, UltimateFallback: true} }

// Candidate is a scored segment, reported by Explain
type Candidate struct {
	Raw      string   `json:"raw"`
	Cleaned  string   `json:"cleaned"`
	Score    int      `json:"score"`
	Signals  []string `json:"signals"`
	Accepted bool     `json:"accepted"`
}

// Extractor scores text fragments and returns cleaned task strings
type Extractor struct {
	opt     Options
	signals []Signal
	tiers   []Tier
}

// New builds an Extractor from opt
func New(opt Options) *Extractor {
	if opt.Cap <= 0 {
		opt.Cap = DefaultCap
	}
	if opt.Lexicon == nil {
		opt.Lexicon = lexicon.Default()
	}
	signals := opt.Signals
	if len(signals) == 0 {
		signals = DefaultSignals(opt.Lexicon)
	}

	tiers := []Tier{
		actionSentencesTier(newKeywordSet(opt.Lexicon.Action)),
		plainSentencesTier(),
	}
	if opt.UltimateFallback {
		tiers = append(tiers, reviewTier())
	}

	return &Extractor{opt: opt, signals: signals, tiers: tiers}
}

// Options returns the effective options
func (e *Extractor) Options() Options { return e.opt }

// Tiers lists the fallback tier names in the order they are tried
func (e *Extractor) Tiers() []string {
	out := make([]string, len(e.tiers))
	for i, t := range e.tiers {
		out[i] = t.Name
	}
	return out
}

// Extract returns the ordered, deduplicated, capped task list for text.
// Blank input yields an empty, non-nil slice
func (e *Extractor) Extract(text string) []string {
	tasks, _ := e.run(text, false)
	return tasks
}

// ExtractValue is the entry point for loosely typed callers. Anything other than a
// string or a non-nil *string is rejected with an invalid argument error
func (e *Extractor) ExtractValue(v any) ([]string, error) {
	switch x := v.(type) {
	case string:
		return e.Extract(x), nil
	case *string:
		if x == nil {
			return nil, perr.InvalidArgf("taskextract: text is nil")
		}
		return e.Extract(*x), nil
	default:
		return nil, perr.InvalidArgf("taskextract: text must be a string, got %T", v)
	}
}

// Explain runs the pipeline and also returns every scored segment that passed the
// length filter, in scoring order
func (e *Extractor) Explain(text string) ([]string, []Candidate) {
	return e.run(text, true)
}

func (e *Extractor) run(text string, explain bool) ([]string, []Candidate) {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return []string{}, nil
	}

	in := segment(clean)
	in.Raw = text
	out := newCollector(e.opt.Cap)

	var cands []Candidate
	for _, seg := range in.Segments {
		if seg.Len < minSegmentLen || seg.Len > maxSegmentLen {
			continue
		}
		total, hit := score(e.signals, seg)
		accepted := total >= acceptScore
		var task string
		if accepted {
			task = Clean(seg.Trimmed)
			out.add(task)
		}
		if explain {
			cands = append(cands, Candidate{
				Raw:      seg.Trimmed,
				Cleaned:  task,
				Score:    total,
				Signals:  hit,
				Accepted: accepted,
			})
		}
	}

	if out.empty() {
		for _, tier := range e.tiers {
			if got := tier.Run(in); len(got) > 0 {
				for _, t := range got {
					out.add(t)
				}
				if !out.empty() {
					break
				}
			}
		}
	}

	return out.list(), cands
}

// collector keeps first-seen order, drops exact duplicates and short strings
type collector struct {
	cap   int
	items []string
	seen  map[string]struct{}
}

func newCollector(limit int) *collector {
	return &collector{cap: limit, items: make([]string, 0, limit), seen: make(map[string]struct{}, limit)}
}

func (c *collector) add(s string) {
	if runeLen(s) < minTaskLen {
		return
	}
	if _, ok := c.seen[s]; ok {
		return
	}
	c.seen[s] = struct{}{}
	c.items = append(c.items, s)
}

func (c *collector) empty() bool { return len(c.items) == 0 }

func (c *collector) list() []string {
	if len(c.items) > c.cap {
		return c.items[:c.cap:c.cap]
	}
	return c.items
}
