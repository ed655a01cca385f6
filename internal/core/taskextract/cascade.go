package taskextract

import "strings"

// Tier is one fallback step tried when scoring accepted nothing.
// The first tier returning a non-empty list wins
type Tier struct {
	Name string
	Run  func(in *input) []string
}

// Tier names
const (
	TierActionSentences = "action_sentences"
	TierPlainSentences  = "plain_sentences"
	TierReview          = "review"
)

const (
	fallbackTaskLen = 80
	reviewPrefix    = "Review: "
	reviewHeadLen   = 50
)

// actionSentencesTier takes mid-length sentences that contain an action keyword.
// Lengths are measured on the untrimmed sentence
func actionSentencesTier(action *keywordSet) Tier {
	return Tier{Name: TierActionSentences, Run: func(in *input) []string {
		var out []string
		for _, s := range in.Sentences {
			n := runeLen(s.Raw)
			if n <= 20 || n >= 100 {
				continue
			}
			if !action.Any(strings.ToLower(s.Raw)) {
				continue
			}
			out = append(out, ellipsize(s.Trimmed, fallbackTaskLen))
		}
		return out
	}}
}

// plainSentencesTier takes up to three short sentences from texts of more than three words
func plainSentencesTier() Tier {
	return Tier{Name: TierPlainSentences, Run: func(in *input) []string {
		if len(strings.Fields(in.Text)) <= 3 {
			return nil
		}
		var out []string
		for _, s := range in.Sentences {
			n := runeLen(s.Raw)
			if n <= 10 || n >= 80 {
				continue
			}
			out = append(out, ellipsize(s.Trimmed, fallbackTaskLen))
			if len(out) == 3 {
				break
			}
		}
		return out
	}}
}

// reviewTier synthesizes a single "Review: ..." task from the head of the
// untrimmed text. Blank text yields nothing
func reviewTier() Tier {
	return Tier{Name: TierReview, Run: func(in *input) []string {
		if in.Text == "" {
			return nil
		}
		head := in.Raw
		if r := []rune(head); len(r) > reviewHeadLen {
			head = string(r[:reviewHeadLen]) + ellipsis
		}
		return []string{reviewPrefix + head}
	}}
}
