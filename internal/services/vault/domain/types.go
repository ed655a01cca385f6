// Package domain holds the records the extension persists and the vault contracts
package domain

import (
	"encoding/json"
	"time"
)

// Bag is a key value snapshot of the store, values are raw JSON
type Bag = map[string]json.RawMessage

// MaxID is the largest id taken from a client or from storage. Larger ids lose
// precision as JSON numbers and leave no room for the generator
const MaxID int64 = 1 << 53

// Store keys
const (
	KeyNotes      = "notes"
	KeyHighlights = "highlights"
	KeyTasks      = "tasks"
	KeySettings   = "settings"
)

// Keys lists every persisted key
var Keys = []string{KeyNotes, KeyHighlights, KeyTasks, KeySettings}

// ActionItem is a checklist entry attached to a note
type ActionItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Note is a saved capture or a composed note
type Note struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title,omitempty"`
	Content     string       `json:"content,omitempty"`
	Text        string       `json:"text,omitempty"`
	Context     string       `json:"context,omitempty"`
	URL         string       `json:"url,omitempty"`
	PageTitle   string       `json:"pageTitle,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	ActionItems []ActionItem `json:"actionItems,omitempty"`
	Tasks       []string     `json:"tasks,omitempty"`
	Date        string       `json:"date,omitempty"`
	SavedAt     string       `json:"savedAt,omitempty"`
}

// Highlight is a highlighted page fragment
type Highlight struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Title     string `json:"title"`
	Context   string `json:"context"`
	URL       string `json:"url"`
	PageTitle string `json:"pageTitle"`
	Date      string `json:"date"`
}

// TaskSource records where a task was captured
type TaskSource struct {
	Text      string `json:"text"`
	URL       string `json:"url"`
	PageTitle string `json:"pageTitle"`
}

// Task is a to do item
type Task struct {
	ID        int64       `json:"id"`
	Text      string      `json:"text"`
	Completed bool        `json:"completed"`
	CreatedAt string      `json:"createdAt"`
	Context   string      `json:"context,omitempty"`
	Source    *TaskSource `json:"source,omitempty"`
}

// Settings are the popup preferences
type Settings struct {
	SpeechEnabled bool `json:"speechEnabled"`
	AutoSave      bool `json:"autoSave"`
	DarkMode      bool `json:"darkMode"`
	Notifications bool `json:"notifications"`
}

// DefaultSettings is written on first load
func DefaultSettings() Settings {
	return Settings{SpeechEnabled: true, AutoSave: true, DarkMode: false, Notifications: true}
}

// Snapshot is the whole decoded store
type Snapshot struct {
	Notes      []Note      `json:"notes"`
	Highlights []Highlight `json:"highlights"`
	Tasks      []Task      `json:"tasks"`
	Settings   Settings    `json:"settings"`
}

// Change reasons
const (
	ReasonNoteSaved        = "note.saved"
	ReasonNoteComposed     = "note.composed"
	ReasonNoteSummarized   = "note.summarized"
	ReasonNoteDeleted      = "note.deleted"
	ReasonHighlightSaved   = "highlight.saved"
	ReasonHighlightDeleted = "highlight.deleted"
	ReasonTasksAdded       = "tasks.added"
	ReasonTaskToggled      = "task.toggled"
	ReasonTaskDeleted      = "task.deleted"
	ReasonSettingsUpdated  = "settings.updated"
)

// Change is published after every successful Update
type Change struct {
	Reason   string
	Count    int
	At       time.Time
	Snapshot Snapshot
}
