// Package lexicon loads the keyword dictionaries used by the task extractor from the embedded lexicon.json
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed lexicon.json
var embedded []byte

// supportedVersion is the only lexicon.json layout this loader understands
const supportedVersion = 1

type rawLexicon struct {
	Version  int            `json:"version"`
	Meta     map[string]any `json:"meta"`
	Action   []string       `json:"action_keywords"`
	Priority []string       `json:"priority_keywords"`
}

// Lexicon is the compiled keyword set
type Lexicon struct {
	Version int
	Meta    map[string]any

	// Action verbs and phrases, lowercased, deduped, file order kept
	Action []string
	// Priority and urgency words, lowercased, deduped, file order kept
	Priority []string
}

var (
	defOnce sync.Once
	defLex  *Lexicon
	defErr  error
)

// Load parses the embedded lexicon.json
func Load() (*Lexicon, error) { return parse(embedded) }

// Default returns the process-wide embedded lexicon, parsed once
// It panics if the embedded file is broken, which is a build defect
func Default() *Lexicon {
	defOnce.Do(func() { defLex, defErr = Load() })
	if defErr != nil {
		panic(defErr)
	}
	return defLex
}

func parse(data []byte) (*Lexicon, error) {
	var raw rawLexicon
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicon.json: %w", err)
	}
	if raw.Version != supportedVersion {
		return nil, fmt.Errorf("lexicon: unsupported lexicon.json version %d (want %d)", raw.Version, supportedVersion)
	}

	lx := &Lexicon{
		Version:  raw.Version,
		Meta:     raw.Meta,
		Action:   clean(raw.Action),
		Priority: clean(raw.Priority),
	}
	if len(lx.Action) == 0 {
		return nil, fmt.Errorf("lexicon: action_keywords is empty")
	}
	if len(lx.Priority) == 0 {
		return nil, fmt.Errorf("lexicon: priority_keywords is empty")
	}
	return lx, nil
}

// clean lowercases, trims and dedupes while keeping first-seen order
func clean(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
