package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/loopbar/loopbar/internal/logging"
)

// Global flag values accessible to all subcommands.
var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
	flagNoColor bool
	flagWidth   int
)

// rootCmd is the base command for loopbar.
var rootCmd = &cobra.Command{
	Use:   "loopbar",
	Short: "Single-line terminal progress bars for long-running work",
	Long: `Loopbar renders a single-line, self-overwriting progress bar on the
terminal: a bracketed bar sized to the terminal width, an exact percentage,
and a linear estimate of the time remaining. The same renderer backs the
bundled commands -- a pacing demo (run) and a concurrent file hasher (hash).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check env vars for flags not explicitly set on command line.
		if !cmd.Flags().Changed("verbose") && os.Getenv("LOOPBAR_VERBOSE") != "" {
			flagVerbose = true
		}
		if !cmd.Flags().Changed("quiet") && os.Getenv("LOOPBAR_QUIET") != "" {
			flagQuiet = true
		}
		if !cmd.Flags().Changed("no-color") && (os.Getenv("NO_COLOR") != "" || os.Getenv("LOOPBAR_NO_COLOR") != "") {
			flagNoColor = true
		}

		// Initialize logging.
		jsonFormat := os.Getenv("LOOPBAR_LOG_FORMAT") == "json"
		logging.Setup(flagVerbose, flagQuiet, jsonFormat)

		// Handle --no-color: disable colored output.
		if flagNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose (debug) output (env: LOOPBAR_VERBOSE)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress all output except errors (env: LOOPBAR_QUIET)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to loopbar.toml config file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output (env: LOOPBAR_NO_COLOR, NO_COLOR)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Bar width in columns, 0 auto-detects the terminal (env: LOOPBAR_WIDTH)")
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd returns a new instance of the root command for use in external
// tools such as the shell completion generator and man page generator. It
// initialises a fresh cobra command tree with the same persistent flags and
// PersistentPreRunE as the global rootCmd so that generated docs and
// completions include all flags.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               rootCmd.Use,
		Short:             rootCmd.Short,
		Long:              rootCmd.Long,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rootCmd.PersistentPreRunE,
	}

	// Register the same persistent flags that the global rootCmd carries.
	// These use local variables (not the package-level flags) so the
	// exported command is safe for concurrent use by generators.
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug) output (env: LOOPBAR_VERBOSE)")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors (env: LOOPBAR_QUIET)")
	cmd.PersistentFlags().String("config", "", "Path to loopbar.toml config file")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output (env: LOOPBAR_NO_COLOR, NO_COLOR)")
	cmd.PersistentFlags().Int("width", 0, "Bar width in columns, 0 auto-detects the terminal (env: LOOPBAR_WIDTH)")

	// Attach all registered subcommands from the global tree.
	for _, child := range rootCmd.Commands() {
		cmd.AddCommand(child)
	}
	return cmd
}
