// Package config reads the service configuration from environment variables.
// Every module gets its own namespaced view, e.g. cfg.Prefix("FLOATY_PGSQL_")
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"floaty/internal/platform/logger"
)

// Conf is a namespaced view over the environment
type Conf struct{ prefix string }

// New returns the root view
func New() Conf { return Conf{} }

// Prefix returns a child view, prefixes nest
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Name returns the fully qualified variable name for key
func (c Conf) Name(key string) string { return c.key(key) }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(key string) string { return strings.TrimSpace(os.Getenv(c.key(key))) }

// must parses a required value and panics through the logger when it is missing or bad
func must[T any](c Conf, key, what string, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid " + what)
	}
	return v
}

// may parses an optional value, falling back to def when missing or bad
func may[T any](c Conf, key, what string, def T, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msg("invalid " + what + "; using default")
		return def
	}
	return v
}

func parseString(s string) (string, error) { return s, nil }

func parseAbsURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, &url.Error{Op: "parse", URL: s, Err: errNotAbsolute}
	}
	return u, nil
}

func parsePort(s string) (string, error) {
	s = strings.TrimPrefix(s, ":")
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return "", errBadPort
	}
	return ":" + s, nil
}

type configError string

func (e configError) Error() string { return string(e) }

const (
	errNotAbsolute = configError("url is not absolute")
	errBadPort     = configError("expected TCP port 1..65535")
)

// MustString panics when key is missing or empty
func (c Conf) MustString(key string) string { return must(c, key, "string", parseString) }

// MustInt panics when key is missing or not an int
func (c Conf) MustInt(key string) int { return must(c, key, "int value", strconv.Atoi) }

// MustBool panics when key is missing or not a bool
func (c Conf) MustBool(key string) bool { return must(c, key, "bool value", strconv.ParseBool) }

// MustDuration panics when key is missing or not a duration like 250ms or 2s
func (c Conf) MustDuration(key string) time.Duration {
	return must(c, key, "duration (e.g., 250ms, 2s, 1h)", time.ParseDuration)
}

// MustURL panics when key is missing or not an absolute URL
func (c Conf) MustURL(key string) *url.URL { return must(c, key, "absolute URL", parseAbsURL) }

// MustPort returns a listen address like ":4000"
func (c Conf) MustPort(key string) string { return must(c, key, "TCP port", parsePort) }

// Require panics on the first missing key
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if c.lookup(k) == "" {
			logger.Get().Panic().Str("key", c.key(k)).Msg("missing required env")
		}
	}
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string { return may(c, key, "string", def, parseString) }

// MayInt returns the value or def, logging a warning when the value is not an int
func (c Conf) MayInt(key string, def int) int { return may(c, key, "int", def, strconv.Atoi) }

// MayFloat64 returns the value or def, logging a warning when the value is not a float
func (c Conf) MayFloat64(key string, def float64) float64 {
	return may(c, key, "float64", def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// MayBool returns the value or def, logging a warning when the value is not a bool
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, "bool", def, strconv.ParseBool) }

// MayDuration returns the value or def, logging a warning when the value is not a duration
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, "duration", def, time.ParseDuration)
}

// MayPort returns a listen address built from key, or def. Both "4000" and ":4000" are accepted
func (c Conf) MayPort(key, def string) string { return may(c, key, "port", def, parsePort) }

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it is one of allowed (case-insensitive), def when
// unset, and panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
