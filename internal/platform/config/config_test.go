package config

import (
	"reflect"
	"testing"
	"time"

	kit "floaty/internal/platform/testkit"
)

func TestPrefixNesting(t *testing.T) {
	api := New().Prefix("FLOATY_").Prefix("API_")
	if got := api.Name("PORT"); got != "FLOATY_API_PORT" {
		t.Fatalf("Name() = %q, want %q", got, "FLOATY_API_PORT")
	}
}

func TestMustHelpers(t *testing.T) {
	c := New().Prefix("FLT_")
	t.Setenv("FLT_NAME", "  floaty ")
	t.Setenv("FLT_WORKERS", " 8 ")
	t.Setenv("FLT_ON", " true ")
	t.Setenv("FLT_TIMEOUT", "250ms")
	t.Setenv("FLT_BASE", "https://example.com/api")
	t.Setenv("FLT_PORT", "4000")

	if got := c.MustString("NAME"); got != "floaty" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	if !c.MustBool("ON") {
		t.Fatalf("MustBool = false")
	}
	if got := c.MustDuration("TIMEOUT"); got != 250*time.Millisecond {
		t.Fatalf("MustDuration = %v", got)
	}
	if u := c.MustURL("BASE"); u.Host != "example.com" {
		t.Fatalf("MustURL host = %q", u.Host)
	}
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
}

func TestMustHelpersPanic(t *testing.T) {
	c := New().Prefix("BAD_")
	t.Setenv("BAD_INT", "x")
	t.Setenv("BAD_BOOL", "notabool")
	t.Setenv("BAD_DUR", "soon")
	t.Setenv("BAD_URL1", "://bad")
	t.Setenv("BAD_URL2", "/relative")
	t.Setenv("BAD_PORT1", "abc")
	t.Setenv("BAD_PORT2", "70000")
	t.Setenv("BAD_WS", "   ")

	cases := map[string]func(){
		"missing string": func() { _ = c.MustString("MISSING") },
		"bad int":        func() { _ = c.MustInt("INT") },
		"missing int":    func() { _ = c.MustInt("MISSING") },
		"bad bool":       func() { _ = c.MustBool("BOOL") },
		"bad duration":   func() { _ = c.MustDuration("DUR") },
		"bad url":        func() { _ = c.MustURL("URL1") },
		"relative url":   func() { _ = c.MustURL("URL2") },
		"bad port":       func() { _ = c.MustPort("PORT1") },
		"port range":     func() { _ = c.MustPort("PORT2") },
		"require ws":     func() { c.Require("WS") },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) { kit.MustPanic(t, fn) })
	}
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_B", "y")
	c.Require("A", "B")
	kit.MustPanic(t, func() { c.Require("A", "C") })
}

func TestMayHelpers(t *testing.T) {
	c := New().Prefix("MAY_")
	t.Setenv("MAY_NAME", " floaty ")
	t.Setenv("MAY_INT", " 7 ")
	t.Setenv("MAY_BADINT", "x")
	t.Setenv("MAY_F", "0.25")
	t.Setenv("MAY_B", "true")
	t.Setenv("MAY_BADB", "nope")
	t.Setenv("MAY_D", "150ms")
	t.Setenv("MAY_BADD", "nope")
	t.Setenv("MAY_PORT", ":8080")
	t.Setenv("MAY_BADPORT", "0")

	if got := c.MayString("NAME", "x"); got != "floaty" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("INT", 0); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BADINT", 3); got != 3 {
		t.Fatalf("MayInt bad = %d", got)
	}
	if got := c.MayFloat64("F", 1); got != 0.25 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	if !c.MayBool("B", false) || c.MayBool("BADB", false) || !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("D", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BADD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad = %v", got)
	}
	if got := c.MayPort("PORT", ":4000"); got != ":8080" {
		t.Fatalf("MayPort = %q", got)
	}
	if got := c.MayPort("BADPORT", ":4000"); got != ":4000" {
		t.Fatalf("MayPort bad = %q", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	def := []string{"chrome-extension://abc"}
	if got := c.MayCSV("MISS", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("MayCSV default = %#v", got)
	}
	t.Setenv("CSV_VALS", " one, two , ,three ,, ")
	if got := c.MayCSV("VALS", nil); !reflect.DeepEqual(got, []string{"one", "two", "three"}) {
		t.Fatalf("MayCSV = %#v", got)
	}
	t.Setenv("CSV_EMPTY", " , ,  ,")
	if got := c.MayCSV("EMPTY", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("MayCSV all blank = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISS", "json", "json", "console"); got != "json" {
		t.Fatalf("MayEnum default = %q", got)
	}
	if got := c.MayEnum("MISS", "", "json", "console"); got != "" {
		t.Fatalf("MayEnum empty default = %q", got)
	}
	t.Setenv("E_FMT", "Console")
	if got := c.MayEnum("FMT", "json", "json", "console"); got != "Console" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("E_BAD", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "json", "json", "console") })
}
