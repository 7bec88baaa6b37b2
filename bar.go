package loopbar

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/loopbar/loopbar/internal/ansi"
	"github.com/loopbar/loopbar/internal/termwidth"
)

// Defaults applied by New when no option overrides them.
const (
	DefaultFill  = "="
	DefaultTrack = " "
	DefaultColor = "default"
)

// Sentinel errors for caller mistakes. Both indicate a bug in the calling
// loop rather than a runtime condition worth retrying.
var (
	// ErrInvalidTotal is returned by New when the total step count is less than 1.
	ErrInvalidTotal = errors.New("total must be at least 1")

	// ErrProgressRegression is returned by AdvanceTo when the requested value
	// is smaller than the progress already recorded.
	ErrProgressRegression = errors.New("progress may not move backward")
)

// Bar tracks progress toward a fixed total and renders it as a single
// terminal row. Progress is monotonically non-decreasing for the lifetime
// of the Bar; the total never changes after construction.
//
// A Bar must not be advanced concurrently. The design assumes one advance
// completes before the next begins, matching the body of a sequential loop.
type Bar struct {
	total   int64
	current int64
	start   time.Time

	fillChar   string
	trackChar  string
	fillColor  string
	trackColor string

	width    func() int
	colorize func(name, text string) string
	now      func() time.Time
}

// New creates a Bar for a loop of total steps. The construction time is
// captured as the baseline for time-remaining estimates, so create the Bar
// immediately before the loop starts.
//
// Returns an error wrapping ErrInvalidTotal when total < 1.
func New(total int64, opts ...Option) (*Bar, error) {
	if total < 1 {
		return nil, fmt.Errorf("loopbar: total %d: %w", total, ErrInvalidTotal)
	}

	b := &Bar{
		total:      total,
		fillChar:   DefaultFill,
		trackChar:  DefaultTrack,
		fillColor:  DefaultColor,
		trackColor: DefaultColor,
		width:      termwidth.Auto,
		colorize:   ansi.Colorize,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.start = b.now()
	return b, nil
}

// Advance increments progress by one step and returns the redrawn row.
// The row begins with a carriage return and carries no trailing newline;
// print it as-is to overwrite the previous frame.
func (b *Bar) Advance() string {
	b.current++
	return b.render()
}

// AdvanceTo sets progress to n and returns the redrawn row. Equal values
// are permitted (the frame is redrawn without progress), and on a fresh
// Bar an explicit 0 is always accepted since recorded progress starts at
// the zero value. Mixing AdvanceTo with Advance is supported as long as
// progress never moves backward.
//
// Returns an error wrapping ErrProgressRegression when n is smaller than
// the progress already recorded.
func (b *Bar) AdvanceTo(n int64) (string, error) {
	if n < b.current {
		return "", fmt.Errorf("loopbar: advance to %d behind current %d: %w", n, b.current, ErrProgressRegression)
	}
	b.current = n
	return b.render(), nil
}

// Current returns the progress recorded so far.
func (b *Bar) Current() int64 {
	return b.current
}

// Total returns the fixed step count the Bar was created with.
func (b *Bar) Total() int64 {
	return b.total
}

// render produces the full carriage-return-prefixed row for the current
// state. The percentage is recomputed from scratch and the terminal width
// re-queried on every call.
func (b *Bar) render() string {
	pct := float64(b.current) / float64(b.total) * 100

	eta := ""
	if secs, ok := b.estimateSeconds(pct); ok {
		eta = HumanizeSeconds(secs)
	}

	return "\r" + b.layout(pct, b.width(), eta)
}

// layout packs the bracketed bar, percentage text, and ETA suffix into
// exactly width columns. The budget arithmetic is fixed so that rows are
// reproducible character for character:
//
//	inner = width - 1(open bracket) - len(etaSuffix) - 1(space) - len(percentText) - 2("] ")
//
// A width too small for the fixed chrome degrades to an empty bracket
// pair; it never panics. Percentages beyond 100 keep their honest text
// while the fill is capped at the full inner width.
func (b *Bar) layout(pct float64, width int, etaText string) string {
	etaSuffix := ""
	if etaText != "" {
		etaSuffix = "(ETA: " + etaText + ")"
	}
	percentText := fmt.Sprintf("%.2f%%", pct)

	inner := width - 1 - len(etaSuffix) - 1 - len(percentText) - 2
	if inner < 0 {
		inner = 0
	}

	filled := int(math.Ceil(float64(inner) * pct / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > inner {
		filled = inner
	}
	track := inner - filled

	// Each cell is wrapped in its own escape pair before repetition, so a
	// future per-cell coloring scheme keeps the exact same layout budget.
	var row strings.Builder
	row.WriteString("[")
	row.WriteString(strings.Repeat(b.colorize(b.fillColor, b.fillChar), filled))
	row.WriteString(strings.Repeat(b.colorize(b.trackColor, b.trackChar), track))
	row.WriteString("] ")
	row.WriteString(percentText)
	row.WriteString(" ")
	row.WriteString(etaSuffix)
	return row.String()
}
