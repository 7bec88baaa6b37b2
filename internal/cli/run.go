package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/loopbar/loopbar"
	"github.com/loopbar/loopbar/internal/config"
	"github.com/loopbar/loopbar/internal/logging"
	"github.com/loopbar/loopbar/internal/termwidth"
)

// Appearance override flags shared with overridesFromFlags. They are
// registered on the commands that render a bar.
var (
	flagFillChar   string
	flagTrackChar  string
	flagFillColor  string
	flagTrackColor string
)

var (
	runSteps int
	runDelay time.Duration
	runSet   []int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a demo progress bar at a fixed pace",
	Long: `Run a demo loop that advances a progress bar one step at a time,
pausing --delay between steps. With --set, the bar instead jumps through the
given absolute step counts in order, exercising the set-position path; a
target behind the current position is rejected.

The bar is drawn on stderr so the demo composes with shell pipelines.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runSteps, "steps", 50, "Total number of steps")
	runCmd.Flags().DurationVar(&runDelay, "delay", 40*time.Millisecond, "Pause between steps")
	runCmd.Flags().IntSliceVar(&runSet, "set", nil, "Jump to these absolute step counts instead of stepping")
	registerAppearanceFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

// registerAppearanceFlags adds the bar appearance override flags to a command.
// Empty defaults mean "not set"; only flags the user changes become overrides.
func registerAppearanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFillChar, "fill-char", "", "Character for completed cells (overrides config)")
	cmd.Flags().StringVar(&flagTrackChar, "track-char", "", "Character for remaining cells (overrides config)")
	cmd.Flags().StringVar(&flagFillColor, "fill-color", "", "Color name for completed cells (overrides config)")
	cmd.Flags().StringVar(&flagTrackColor, "track-color", "", "Color name for remaining cells (overrides config)")
}

// barOptions translates a resolved configuration into bar construction
// options. Width 0 keeps the bar's own terminal auto-detection; color is
// stripped when configured off or when stderr is not a terminal, since the
// escape sequences would otherwise land verbatim in redirected output.
func barOptions(rc *config.ResolvedConfig) []loopbar.Option {
	opts := []loopbar.Option{
		loopbar.WithFill(rc.Config.Bar.FillChar),
		loopbar.WithTrack(rc.Config.Bar.TrackChar),
		loopbar.WithFillColor(rc.Config.Bar.FillColor),
		loopbar.WithTrackColor(rc.Config.Bar.TrackColor),
	}
	if rc.Config.Output.Width > 0 {
		opts = append(opts, loopbar.WithWidth(rc.Config.Output.Width))
	}
	if rc.Config.Output.NoColor || !termwidth.IsTerminal(os.Stderr) {
		opts = append(opts, loopbar.WithoutColor())
	}
	return opts
}

// resolveForBar loads the configuration, fails on validation errors, and logs
// warnings without aborting.
func resolveForBar(cmd *cobra.Command, component string) (*config.ResolvedConfig, error) {
	rc, meta, err := loadAndResolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	result := config.Validate(rc.Config, meta)
	if result.HasErrors() {
		printValidationResult(cmd, result)
		return nil, fmt.Errorf("configuration has %d error(s)", len(result.Errors()))
	}
	logger := logging.New(component)
	for _, issue := range result.Warnings() {
		logger.Warn("config", "field", issue.Field, "issue", issue.Message)
	}

	return rc, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	rc, err := resolveForBar(cmd, "run")
	if err != nil {
		return err
	}

	bar, err := loopbar.New(int64(runSteps), barOptions(rc)...)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := cmd.ErrOrStderr()

	// The terminal shows whatever was last written; after the loop (or on
	// cancellation) a single newline releases the row.
	defer fmt.Fprintln(out)

	if len(runSet) > 0 {
		for _, target := range runSet {
			if err := pause(ctx, runDelay); err != nil {
				return err
			}
			row, err := bar.AdvanceTo(int64(target))
			if err != nil {
				return err
			}
			fmt.Fprint(out, row)
		}
		return nil
	}

	for i := 0; i < runSteps; i++ {
		if err := pause(ctx, runDelay); err != nil {
			return err
		}
		fmt.Fprint(out, bar.Advance())
	}
	return nil
}

// pause sleeps for d or returns early when the context is cancelled.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
