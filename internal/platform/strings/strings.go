// Package strings holds the small string helpers shared by modules and handlers
package strings

import std "strings"

// Coalesce returns the first value with non whitespace content, or ""
func Coalesce(vals ...string) string {
	for _, v := range vals {
		if std.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Or returns s, or def when s is blank
func Or(s, def string) string { return Coalesce(s, def) }

// IfEmpty returns def when in is empty
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s when it has content and panics naming what was missing otherwise
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route prefix like "notes" or "/notes/" to "/notes".
// The bare root panics
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
