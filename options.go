package loopbar

import "time"

// Option adjusts a Bar during construction. Options are applied in order,
// so later options win when two touch the same field.
type Option func(*Bar)

// WithFill sets the string drawn for each completed cell. The default is
// "=". The value is stored verbatim; for the layout budget to hold it
// should occupy exactly one terminal column.
func WithFill(s string) Option {
	return func(b *Bar) { b.fillChar = s }
}

// WithTrack sets the string drawn for each remaining cell. The default is
// a single space.
func WithTrack(s string) Option {
	return func(b *Bar) { b.trackChar = s }
}

// WithFillColor names the color of completed cells. Names are resolved
// lazily at render time; unknown names degrade to uncolored output
// instead of failing.
func WithFillColor(name string) Option {
	return func(b *Bar) { b.fillColor = name }
}

// WithTrackColor names the color of remaining cells.
func WithTrackColor(name string) Option {
	return func(b *Bar) { b.trackColor = name }
}

// WithWidth fixes the layout width to n columns instead of querying the
// terminal on every render. Values below 1 are ignored and the Bar keeps
// automatic discovery.
func WithWidth(n int) Option {
	return func(b *Bar) {
		if n < 1 {
			return
		}
		b.width = func() int { return n }
	}
}

// WithWidthFunc installs a custom terminal width provider. The provider is
// called once per render and should return 0 when the width is unknown; a
// nil provider keeps the default automatic discovery.
func WithWidthFunc(f func() int) Option {
	return func(b *Bar) {
		if f != nil {
			b.width = f
		}
	}
}

// WithColorizeFunc installs a custom colorizer. The function receives a
// color name and the text of a single cell and returns the decorated cell;
// it must handle unknown names itself. A nil function keeps the built-in
// ANSI palette.
func WithColorizeFunc(f func(name, text string) string) Option {
	return func(b *Bar) {
		if f != nil {
			b.colorize = f
		}
	}
}

// WithoutColor disables cell coloring entirely. Rows carry no escape
// sequences, which also makes their printed length equal their byte
// length.
func WithoutColor() Option {
	return func(b *Bar) {
		b.colorize = func(_, text string) string { return text }
	}
}

// WithClock substitutes the time source used for the construction
// timestamp and every subsequent ETA estimate. A nil clock keeps
// time.Now. Intended for tests and for callers that already hold a
// frozen or offset clock.
func WithClock(f func() time.Time) Option {
	return func(b *Bar) {
		if f != nil {
			b.now = f
		}
	}
}
