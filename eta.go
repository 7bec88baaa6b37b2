package loopbar

import (
	"fmt"
	"math"
	"strings"
)

// durationUnits is the fixed decomposition table for humanized durations,
// largest unit first. Calendar-naive on purpose: a year is 365 days and a
// month 30, with no leap-year or variable-month handling.
var durationUnits = []struct {
	secs  int64
	label string
}{
	{31536000, "year"},
	{2592000, "month"},
	{604800, "week"},
	{86400, "day"},
	{3600, "hour"},
	{60, "minute"},
	{1, "second"},
}

// estimateSeconds linearly extrapolates the whole seconds remaining from
// the elapsed time and the fraction of work completed, rounded up so the
// estimate never undershoots.
//
// The second result is false when no meaningful estimate exists: at zero
// (or negative) percent there is nothing to extrapolate from, and a
// degenerate extrapolation (non-finite, negative, or beyond the int64
// range) is discarded rather than shown. A false result renders as an
// absent ETA; estimation can never fail a render.
func (b *Bar) estimateSeconds(pct float64) (int64, bool) {
	if pct <= 0 {
		return 0, false
	}

	elapsed := b.now().Sub(b.start).Seconds()
	remaining := elapsed / pct * (100 - pct)

	if math.IsNaN(remaining) || math.IsInf(remaining, 0) || remaining < 0 {
		return 0, false
	}
	if remaining >= float64(math.MaxInt64) {
		return 0, false
	}
	return int64(math.Ceil(remaining)), true
}

// HumanizeSeconds formats a second count as a space-joined breakdown of
// calendar-naive units, largest first: "1 hour 2 minutes 3 seconds".
//
// Decomposition is greedy, units with a zero count are omitted entirely,
// and counts other than 1 pluralize their label. Zero (and anything
// negative) formats as the literal "0 seconds".
func HumanizeSeconds(secs int64) string {
	if secs <= 0 {
		return "0 seconds"
	}

	var parts []string
	remaining := secs
	for _, unit := range durationUnits {
		if remaining < unit.secs {
			continue
		}
		count := remaining / unit.secs
		remaining -= count * unit.secs

		label := unit.label
		if count != 1 {
			label += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", count, label))
	}
	return strings.Join(parts, " ")
}
