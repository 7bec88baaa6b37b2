// Package loopbar renders a single-line, self-overwriting progress bar for
// command-line loops.
//
// A Bar is created with the loop's total step count and redrawn once per
// iteration. Every advance returns one complete row prefixed with a
// carriage return, so printing it without a newline overwrites the
// previous frame in place:
//
//	bar, err := loopbar.New(int64(len(files)))
//	if err != nil {
//		return err
//	}
//	for _, f := range files {
//		process(f)
//		fmt.Fprint(os.Stderr, bar.Advance())
//	}
//	fmt.Fprintln(os.Stderr)
//
// Each row packs a bracketed fill/track bar, the exact percentage, and a
// humanized time-remaining estimate into the current terminal width. The
// width is queried fresh on every advance, so the bar adapts when the
// terminal is resized between frames.
//
// A Bar is deliberately synchronous and unsynchronized: one advance must
// complete before the next begins. Loops that advance from multiple
// goroutines must funnel progress through a single collector.
package loopbar
