package strings

import (
	"testing"

	kit "floaty/internal/platform/testkit"
)

func TestCoalesce(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{[]string{"", "  ", "text", "later"}, "text"},
		{[]string{"title", "text"}, "title"},
		{[]string{"", ""}, ""},
		{nil, ""},
	}
	for _, c := range cases {
		if got := Coalesce(c.in...); got != c.want {
			t.Fatalf("Coalesce(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := Or(" ", "Highlighted Text"); got != "Highlighted Text" {
		t.Fatalf("Or = %q", got)
	}
}

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty([]string{}, []string{"a"}); len(got) != 1 {
		t.Fatalf("IfEmpty default not used")
	}
	if got := IfEmpty([]int{1, 2}, nil); len(got) != 2 {
		t.Fatalf("IfEmpty replaced a non empty slice")
	}
}

func TestMustHelpers(t *testing.T) {
	if got := MustPrefix(" notes/ "); got != "/notes" {
		t.Fatalf("MustPrefix = %q", got)
	}
	if got := MustPrefix("/meta"); got != "/meta" {
		t.Fatalf("MustPrefix = %q", got)
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
	if MustString("tasks", "name") != "tasks" {
		t.Fatalf("MustString changed value")
	}
	kit.MustPanic(t, func() { MustString("  ", "module name") })
}
