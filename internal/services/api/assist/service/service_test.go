package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"floaty/internal/services/api/assist/domain"
)

type fakeModel struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeModel) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

const long = "Email the draft to Sam before the Friday review. Book a room for the offsite next month. Pick up groceries."

func TestPrompts(t *testing.T) {
	cases := []struct {
		name, got, want string
	}{
		{"title with context", TitlePrompt("Buy milk", "Shopping"),
			`Generate a concise title (max 60 characters) for this text: "Buy milk" Context: Shopping. Return only the title, nothing else.`},
		{"title without context", TitlePrompt("Buy milk", ""),
			`Generate a concise title (max 60 characters) for this text: "Buy milk". Return only the title, nothing else.`},
		{"summary", SummaryPrompt("Buy milk"),
			`Summarize this text in 2-3 concise sentences: "Buy milk". Return only the summary, nothing else.`},
		{"tasks", TasksPrompt("Buy milk", ""),
			`Extract 2-3 actionable tasks from this text: "Buy milk". Return only the tasks as a JSON array of strings, nothing else. Example: ["Task 1", "Task 2", "Task 3"]`},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s:\n got %s\nwant %s", tc.name, tc.got, tc.want)
		}
	}
}

func TestModelReplies(t *testing.T) {
	ctx := context.Background()
	m := &fakeModel{reply: "Sam draft"}
	s := New(m)
	if got := s.Title(ctx, domain.TextInput{Text: long, Context: "Inbox"}); got.Title != "Sam draft" {
		t.Fatalf("title = %q", got.Title)
	}
	if !strings.Contains(m.prompts[0], "Context: Inbox") {
		t.Fatalf("prompt = %q", m.prompts[0])
	}

	m.reply = "Two sentences. Done."
	if got := s.Summary(ctx, domain.TextInput{Text: long}); got.Summary != "Two sentences. Done." {
		t.Fatalf("summary = %q", got.Summary)
	}

	m.reply = `["Email Sam", "Book room"]`
	if got := s.Tasks(ctx, domain.TextInput{Text: long}); !reflect.DeepEqual(got.Tasks, []string{"Email Sam", "Book room"}) {
		t.Fatalf("tasks = %v", got.Tasks)
	}

	m.reply = "- Email Sam\n* Book room\n\n• Groceries\n- Extra"
	if got := s.Tasks(ctx, domain.TextInput{Text: long}); !reflect.DeepEqual(got.Tasks, []string{"Email Sam", "Book room", "Groceries"}) {
		t.Fatalf("line tasks = %v", got.Tasks)
	}
}

func TestFallbacks(t *testing.T) {
	ctx := context.Background()
	for name, s := range map[string]*Service{
		"no model":    New(nil),
		"model error": New(&fakeModel{err: errors.New("quota")}),
	} {
		in := domain.TextInput{Text: long}
		title := s.Title(ctx, in).Title
		if !strings.HasSuffix(title, "...") || len(title) != 53 {
			t.Fatalf("%s: title = %q", name, title)
		}
		if got := s.Summary(ctx, in).Summary; got != "Email the draft to Sam before the Friday review. Book a room for the offsite next month." {
			t.Fatalf("%s: summary = %q", name, got)
		}
		tasks := s.Tasks(ctx, in).Tasks
		if len(tasks) != 2 || tasks[0] != "Review: Email the draft to Sam before the Friday review" {
			t.Fatalf("%s: tasks = %v", name, tasks)
		}
	}

	if got := New(nil).Tasks(ctx, domain.TextInput{Text: "short"}).Tasks; got == nil || len(got) != 0 {
		t.Fatalf("tasks for short text = %#v", got)
	}
}
