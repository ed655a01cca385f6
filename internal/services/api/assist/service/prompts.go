package service

import "fmt"

func contextSuffix(pageContext string) string {
	if pageContext == "" {
		return ""
	}
	return " Context: " + pageContext
}

// TitlePrompt asks for a title of at most 60 characters
func TitlePrompt(text, pageContext string) string {
	return fmt.Sprintf("Generate a concise title (max 60 characters) for this text: \"%s\"%s. Return only the title, nothing else.",
		text, contextSuffix(pageContext))
}

// SummaryPrompt asks for two or three sentences
func SummaryPrompt(text string) string {
	return fmt.Sprintf("Summarize this text in 2-3 concise sentences: \"%s\". Return only the summary, nothing else.", text)
}

// TasksPrompt asks for a JSON array of two or three tasks
func TasksPrompt(text, pageContext string) string {
	return fmt.Sprintf("Extract 2-3 actionable tasks from this text: \"%s\"%s. Return only the tasks as a JSON array of strings, nothing else. Example: [\"Task 1\", \"Task 2\", \"Task 3\"]",
		text, contextSuffix(pageContext))
}
