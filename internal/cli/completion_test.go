package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionCmd_RegisteredInRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "completion [bash|zsh|fish|powershell]" {
			found = true
			break
		}
	}
	assert.True(t, found, "completion command must be registered in rootCmd")
}

func TestCompletionCmd_Metadata(t *testing.T) {
	assert.Equal(t, "completion [bash|zsh|fish|powershell]", completionCmd.Use)
	assert.Equal(t, "Generate shell completion scripts", completionCmd.Short)
	assert.Contains(t, completionCmd.Long, "Generate shell completion scripts for loopbar")
	assert.True(t, completionCmd.DisableFlagsInUseLine,
		"DisableFlagsInUseLine should be true")
}

func TestCompletionCmd_ValidArgs(t *testing.T) {
	expected := []string{"bash", "zsh", "fish", "powershell"}
	assert.Equal(t, expected, completionCmd.ValidArgs,
		"ValidArgs should contain bash, zsh, fish, powershell")
}

func TestCompletionCmd_AllShells(t *testing.T) {
	shells := []struct {
		name     string
		contains string
	}{
		{name: "bash", contains: "bash"},
		{name: "zsh", contains: "compdef"},
		{name: "fish", contains: "complete"},
		{name: "powershell", contains: "Register"},
	}

	for _, tt := range shells {
		t.Run(tt.name, func(t *testing.T) {
			resetRootCmd(t)
			clearResolutionEnv(t)

			stdout, _, code := captureOutput(t, "completion", tt.name)

			assert.Equal(t, 0, code, "exit code should be 0 for %s", tt.name)
			assert.NotEmpty(t, stdout, "%s completion output should not be empty", tt.name)
			assert.Contains(t, stdout, tt.contains,
				"%s completion should contain %q", tt.name, tt.contains)
			assert.Contains(t, stdout, "loopbar",
				"%s completion should mention the binary name", tt.name)
		})
	}
}

func TestCompletionCmd_NoArgs(t *testing.T) {
	resetRootCmd(t)
	clearResolutionEnv(t)

	_, _, code := captureOutput(t, "completion")

	assert.Equal(t, 1, code, "missing shell argument should cause exit code 1")
}

func TestCompletionCmd_InvalidShell(t *testing.T) {
	resetRootCmd(t)
	clearResolutionEnv(t)

	_, stderr, code := captureOutput(t, "completion", "ksh")

	assert.Equal(t, 1, code, "invalid shell name should cause exit code 1")
	assert.Contains(t, stderr, "invalid argument",
		"error should indicate invalid argument")
}

func TestCompletionCmd_ExtraArgs(t *testing.T) {
	resetRootCmd(t)
	clearResolutionEnv(t)

	_, _, code := captureOutput(t, "completion", "bash", "extra")

	assert.Equal(t, 1, code, "extra arguments should cause exit code 1")
}

func TestCompletionCmd_CaseSensitive(t *testing.T) {
	resetRootCmd(t)
	clearResolutionEnv(t)

	_, _, code := captureOutput(t, "completion", "Bash")

	assert.Equal(t, 1, code, "mixed-case shell name should be rejected")
}

func TestCompletionCmd_AppearsInHelp(t *testing.T) {
	resetRootCmd(t)
	clearResolutionEnv(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--help"})

	code := Execute()
	assert.Equal(t, 0, code)

	assert.Contains(t, buf.String(), "completion",
		"help output should list completion command")
}

func TestCompletionCmd_HelpContainsInstallExamples(t *testing.T) {
	examples := []struct {
		name    string
		snippet string
	}{
		{name: "bash_linux", snippet: "/etc/bash_completion.d/loopbar"},
		{name: "bash_macos", snippet: "brew --prefix"},
		{name: "zsh_fpath", snippet: `"${fpath[1]}/_loopbar"`},
		{name: "zsh_alt", snippet: "~/.zsh/completions/_loopbar"},
		{name: "fish", snippet: "~/.config/fish/completions/loopbar.fish"},
		{name: "powershell", snippet: "loopbar.ps1"},
		{name: "powershell_profile", snippet: `. loopbar.ps1`},
	}

	for _, tt := range examples {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, completionCmd.Long, tt.snippet,
				"Long description should contain install example for %s", tt.name)
		})
	}
}

func TestCompletionCmd_OutputToStdout_NotStderr(t *testing.T) {
	resetRootCmd(t)
	clearResolutionEnv(t)

	stdout, stderr, code := captureOutput(t, "completion", "bash")

	assert.Equal(t, 0, code)
	assert.NotEmpty(t, stdout, "completion output should go to stdout")
	// Stderr may carry log lines but never the script itself.
	assert.NotContains(t, stderr, "__loopbar_init_completion",
		"completion script should not go to stderr")
}
