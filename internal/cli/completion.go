package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// completionCmd generates shell completion scripts for loopbar.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for loopbar.

To install completions:

  Bash (Linux):
    loopbar completion bash | sudo tee /etc/bash_completion.d/loopbar > /dev/null

  Bash (macOS with Homebrew):
    loopbar completion bash > $(brew --prefix)/etc/bash_completion.d/loopbar

  Zsh:
    loopbar completion zsh > "${fpath[1]}/_loopbar"
    # or
    loopbar completion zsh > ~/.zsh/completions/_loopbar

  Fish:
    loopbar completion fish > ~/.config/fish/completions/loopbar.fish

  PowerShell:
    loopbar completion powershell > loopbar.ps1
    # Then add ". loopbar.ps1" to your PowerShell profile`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
