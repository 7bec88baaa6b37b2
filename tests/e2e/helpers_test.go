package e2e_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testProject is an isolated working directory with a freshly built loopbar
// binary. Commands run inside it see a pinned terminal environment (no color,
// JSON logs, COLUMNS=60) regardless of the host shell.
type testProject struct {
	Dir        string
	BinaryPath string
	t          *testing.T
}

// newTestProject builds the loopbar binary into a fresh temp directory and
// returns a testProject ready for use. Must be called from a test function;
// uses t.Helper() to mark itself accordingly.
func newTestProject(t *testing.T) *testProject {
	t.Helper()

	dir := t.TempDir()

	binary := filepath.Join(dir, "loopbar")
	build := exec.Command("go", "build", "-o", binary, "./cmd/loopbar")
	build.Dir = projectRoot()
	out, err := build.CombinedOutput()
	require.NoError(t, err, "building loopbar: %s", string(out))

	return &testProject{Dir: dir, BinaryPath: binary, t: t}
}

// projectRoot returns the absolute path to the root of the loopbar repository.
// It uses runtime.Caller(0) to find this source file's location and navigates
// two directories up (tests/e2e/ -> tests/ -> repo root).
func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

// run creates an exec.Cmd for loopbar with a scrubbed environment. Host
// LOOPBAR_* variables, NO_COLOR, and COLUMNS are stripped so resolution
// tests see only what the test itself sets.
func (tp *testProject) run(args ...string) *exec.Cmd {
	cmd := exec.Command(tp.BinaryPath, args...)
	cmd.Dir = tp.Dir

	env := make([]string, 0, len(os.Environ())+3)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "LOOPBAR_") ||
			strings.HasPrefix(kv, "NO_COLOR=") ||
			strings.HasPrefix(kv, "COLUMNS=") {
			continue
		}
		env = append(env, kv)
	}
	cmd.Env = append(env,
		"NO_COLOR=1",              // disable ANSI color in output
		"LOOPBAR_LOG_FORMAT=json", // structured logs for easier parsing
		"COLUMNS=60",              // deterministic width with piped stdio
	)
	return cmd
}

// withEnv appends extra KEY=VALUE pairs to an already prepared command.
func withEnv(cmd *exec.Cmd, pairs ...string) *exec.Cmd {
	cmd.Env = append(cmd.Env, pairs...)
	return cmd
}

// runExpectSuccess runs loopbar and asserts exit code 0.
// Returns combined stdout+stderr output.
func (tp *testProject) runExpectSuccess(args ...string) string {
	tp.t.Helper()
	cmd := tp.run(args...)
	out, err := cmd.CombinedOutput()
	require.NoError(tp.t, err, "loopbar %v failed:\n%s", args, string(out))
	return string(out)
}

// runExpectFailure runs loopbar and asserts a non-zero exit code.
// Returns combined output and the exit code.
func (tp *testProject) runExpectFailure(args ...string) (string, int) {
	tp.t.Helper()
	cmd := tp.run(args...)
	out, err := cmd.CombinedOutput()
	require.Error(tp.t, err, "loopbar %v expected to fail but succeeded:\n%s", args, string(out))
	var exitErr *exec.ExitError
	require.True(tp.t, errors.As(err, &exitErr), "expected *exec.ExitError, got %T: %v", err, err)
	return string(out), exitErr.ExitCode()
}

// runSplit runs a prepared command and returns stdout and stderr separately.
// The progress bar draws on stderr while results go to stdout, so most bar
// assertions need the streams apart.
func (tp *testProject) runSplit(cmd *exec.Cmd) (string, string, error) {
	tp.t.Helper()
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// writeConfig writes content to loopbar.toml in tp.Dir.
func (tp *testProject) writeConfig(content string) {
	tp.t.Helper()
	err := os.WriteFile(filepath.Join(tp.Dir, "loopbar.toml"), []byte(content), 0o644)
	require.NoError(tp.t, err)
}

// writeFile writes content to a path relative to tp.Dir, creating parent
// directories as needed.
func (tp *testProject) writeFile(relPath, content string) {
	tp.t.Helper()
	full := filepath.Join(tp.Dir, filepath.FromSlash(relPath))
	require.NoError(tp.t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(tp.t, os.WriteFile(full, []byte(content), 0o644))
}

// barRows splits progress output into its carriage-return separated rows,
// dropping the empty leading element. The final row is cut at the newline
// that releases the line; anything after it (log lines) is discarded.
func barRows(t *testing.T, stderr string) []string {
	t.Helper()
	parts := strings.Split(stderr, "\r")
	require.NotEmpty(t, parts)
	require.Empty(t, parts[0], "nothing should precede the first carriage return")
	rows := parts[1:]
	require.NotEmpty(t, rows, "expected at least one bar row")
	last := len(rows) - 1
	final, _, found := strings.Cut(rows[last], "\n")
	require.True(t, found, "final row should release the line with a newline")
	rows[last] = final
	return rows
}
