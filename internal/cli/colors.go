package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loopbar/loopbar"
	"github.com/loopbar/loopbar/internal/ansi"
	"github.com/loopbar/loopbar/internal/termwidth"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the color names the bar understands",
	Long: `List every color name accepted by fill_color and track_color, each
rendered in its own color, followed by a sample bar row in the currently
configured colors. Unknown names fall back to the terminal default at render
time, so this list is advisory rather than enforced.`,
	Args: cobra.NoArgs,
	RunE: runColors,
}

func init() {
	registerAppearanceFlags(colorsCmd)
	rootCmd.AddCommand(colorsCmd)
}

func runColors(cmd *cobra.Command, args []string) error {
	rc, err := resolveForBar(cmd, "colors")
	if err != nil {
		return err
	}

	// The palette goes to stdout, so gate on stdout being a terminal here
	// rather than stderr as the bar-drawing commands do.
	colorize := ansi.Colorize
	if rc.Config.Output.NoColor || !termwidth.IsTerminal(os.Stdout) {
		colorize = ansi.Plain
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleHeader.Render("Color palette"))
	fmt.Fprintln(out, strings.Repeat("=", len("Color palette")))
	fmt.Fprintln(out)

	for _, name := range ansi.Names() {
		fmt.Fprintf(out, "  %-13s %s\n", name, colorize(name, strings.Repeat("=", 12)))
	}
	fmt.Fprintln(out)

	bar, err := loopbar.New(2,
		loopbar.WithFill(rc.Config.Bar.FillChar),
		loopbar.WithTrack(rc.Config.Bar.TrackChar),
		loopbar.WithFillColor(rc.Config.Bar.FillColor),
		loopbar.WithTrackColor(rc.Config.Bar.TrackColor),
		loopbar.WithWidth(44),
		loopbar.WithColorizeFunc(colorize),
	)
	if err != nil {
		return err
	}
	row, err := bar.AdvanceTo(1)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Sample (%s on %s):\n", rc.Config.Bar.FillColor, rc.Config.Bar.TrackColor)
	fmt.Fprintln(out, strings.TrimPrefix(row, "\r"))
	return nil
}
