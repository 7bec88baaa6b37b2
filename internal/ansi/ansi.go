// Package ansi maps symbolic color names to raw ANSI escape sequences.
//
// The table mirrors the classic 16-color terminal palette plus a "default"
// entry that resolves to the reset sequence. Lookup is lazy and forgiving:
// unknown names fall back to "default" rather than failing, so a typo in a
// configured color degrades to uncolored output instead of an error.
package ansi

import "sort"

// Reset clears all terminal text attributes.
const Reset = "\x1b[0m"

// codes maps symbolic color names to their ANSI start sequences.
// "brown" and "orange" are aliases for the same sequence.
var codes = map[string]string{
	"black":        "\x1b[0;30m",
	"red":          "\x1b[0;31m",
	"green":        "\x1b[0;32m",
	"brown":        "\x1b[0;33m",
	"orange":       "\x1b[0;33m",
	"blue":         "\x1b[0;34m",
	"purple":       "\x1b[0;35m",
	"cyan":         "\x1b[0;36m",
	"light-gray":   "\x1b[0;37m",
	"dark-gray":    "\x1b[1;30m",
	"light-red":    "\x1b[1;31m",
	"light-green":  "\x1b[1;32m",
	"yellow":       "\x1b[1;33m",
	"light-blue":   "\x1b[1;34m",
	"light-purple": "\x1b[1;35m",
	"light-cyan":   "\x1b[1;36m",
	"white":        "\x1b[1;37m",
	"default":      Reset,
}

// Colorize wraps text in the escape sequence for the named color, followed
// by a reset. Unknown names resolve to "default", so the result is always
// start + text + reset, never an error. The reset suffix is emitted even
// for "default" to guarantee no attribute leaks past the wrapped text.
func Colorize(name, text string) string {
	code, ok := codes[name]
	if !ok {
		code = codes["default"]
	}
	return code + text + Reset
}

// Plain returns text unchanged. It has the same shape as Colorize so
// callers can swap it in when color output is disabled.
func Plain(_, text string) string {
	return text
}

// Known reports whether name is a recognized color name.
func Known(name string) bool {
	_, ok := codes[name]
	return ok
}

// Names returns every recognized color name in sorted order.
func Names() []string {
	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Code returns the raw start sequence for the named color, falling back to
// the "default" sequence for unknown names.
func Code(name string) string {
	if code, ok := codes[name]; ok {
		return code
	}
	return codes["default"]
}
