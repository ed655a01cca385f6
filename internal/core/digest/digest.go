// Package digest holds the local title, summary and task-list heuristics used
// whenever the language model is unavailable or returns something unusable
package digest

import (
	"encoding/json"
	"regexp"
	"strings"

	"floaty/internal/core/normalize"
	"floaty/internal/core/taskextract"
)

const (
	// UntitledNote is the title of last resort
	UntitledNote = "Untitled Note"
	// AlreadyConcise is returned by Summary for texts of two sentences or fewer
	AlreadyConcise = "Text is already concise."
	// NoSummary is shown when the remote service answered without a summary
	NoSummary = "Unable to generate summary."

	titleMax      = 50
	titleWords    = 6
	ellipsis      = "..."
	minSentence   = 10
	fallbackCount = 2
	maxListLines  = 3
	reviewPrefix  = "Review: "
)

// Title builds a short title from the first words of text, prefixed with
// "[context] " when context is set
func Title(text, context string) string {
	words := strings.Fields(text)
	if len(words) > titleWords {
		words = words[:titleWords]
	}
	title := clip(strings.Join(words, " "), titleMax)

	if ctx := strings.TrimSpace(context); ctx != "" {
		prefix := "[" + ctx + "] "
		if runeLen(title)+runeLen(prefix) <= titleMax {
			title = prefix + title
		} else {
			title = prefix + head(title, titleMax-runeLen(prefix)-len(ellipsis)) + ellipsis
		}
	}
	if title == "" {
		return UntitledNote
	}
	return title
}

// ClampTitle applies the display rules to a title received from elsewhere
func ClampTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return UntitledNote
	}
	return clip(title, titleMax)
}

// Summary joins the first and last sentence of text
func Summary(text string) string {
	sentences := taskextract.Split(taskextract.PoolSentence, text)
	if len(sentences) <= 2 {
		return AlreadyConcise
	}
	return sentences[0] + ". " + sentences[len(sentences)-1] + "."
}

// FallbackTitle is the server side title used when the model call fails
func FallbackTitle(text string) string {
	text = strings.TrimSpace(text)
	if runeLen(text) > titleMax {
		return head(text, titleMax) + ellipsis
	}
	return text
}

// FallbackSummary joins the first two substantial sentences. Text without any
// falls back to its own one-line form
func FallbackSummary(text string) string {
	picked := substantial(text, fallbackCount)
	if len(picked) == 0 {
		return FallbackTitle(normalize.OneLine(text))
	}
	return strings.Join(picked, ". ") + "."
}

// ReviewTasks turns the first two substantial sentences into review tasks
func ReviewTasks(text string) []string {
	picked := substantial(text, fallbackCount)
	out := make([]string, 0, len(picked))
	for _, s := range picked {
		out = append(out, reviewPrefix+s)
	}
	return out
}

var (
	reListMarker = regexp.MustCompile(`^[-*•]\s*`)
	reCodeFence  = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
)

// ParseTaskList reads a model reply that should be a JSON array of strings.
// Anything else is read as a list, one task per non-empty line, first three only
func ParseTaskList(reply string) []string {
	reply = strings.TrimSpace(reply)
	if m := reCodeFence.FindStringSubmatch(reply); m != nil {
		reply = m[1]
	}

	var arr []string
	if err := json.Unmarshal([]byte(reply), &arr); err == nil {
		out := make([]string, 0, len(arr))
		for _, s := range arr {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	out := make([]string, 0, maxListLines)
	for _, line := range strings.Split(reply, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(reListMarker.ReplaceAllString(strings.TrimSpace(line), "")))
		if len(out) == maxListLines {
			break
		}
	}
	return out
}

func substantial(text string, limit int) []string {
	var out []string
	for _, s := range taskextract.Split(taskextract.PoolSentence, text) {
		if runeLen(s) <= minSentence {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

// clip shortens s to max runes, keeping room for the ellipsis
func clip(s string, max int) string {
	if runeLen(s) <= max {
		return s
	}
	return head(s, max-len(ellipsis)) + ellipsis
}

func head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func runeLen(s string) int { return len([]rune(s)) }
