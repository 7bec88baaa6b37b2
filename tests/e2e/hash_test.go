package e2e_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashDigestsSortedByPath(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}
	t.Parallel()

	tp := newTestProject(t)
	tp.writeFile("b.txt", "bravo")
	tp.writeFile("a.txt", "alpha")
	tp.writeFile("sub/c.txt", "charlie")

	stdout, stderr, err := tp.runSplit(tp.run("hash", "**/*.txt", "-q"))
	require.NoError(t, err, "hash failed:\n%s", stderr)

	want := fmt.Sprintf("%016x  a.txt\n%016x  b.txt\n%016x  sub/c.txt\n",
		xxhash.Sum64String("alpha"),
		xxhash.Sum64String("bravo"),
		xxhash.Sum64String("charlie"))
	assert.Equal(t, want, stdout, "digest lines must be sorted and reproducible")

	rows := barRows(t, stderr)
	require.Len(t, rows, 3, "one redraw per hashed file")
	assert.Contains(t, rows[2], "] 100.00% ")
}

func TestHashSummaryLogWithoutQuiet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}
	t.Parallel()

	tp := newTestProject(t)
	tp.writeFile("one.txt", "1")
	tp.writeFile("two.txt", "22")

	_, stderr, err := tp.runSplit(tp.run("hash", "*.txt"))
	require.NoError(t, err, "hash failed:\n%s", stderr)

	// LOOPBAR_LOG_FORMAT=json turns the summary into a structured line.
	assert.Contains(t, stderr, "hashed")
	assert.Contains(t, stderr, "files")
}

func TestHashManyFilesWithWorkers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}
	t.Parallel()

	tp := newTestProject(t)
	for i := 0; i < 8; i++ {
		tp.writeFile(fmt.Sprintf("f%d.dat", i), strings.Repeat("x", i+1))
	}

	stdout, stderr, err := tp.runSplit(tp.run("hash", "*.dat", "--workers", "4", "-q"))
	require.NoError(t, err, "hash failed:\n%s", stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 8)

	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		require.Len(t, line, 16+2+len("f0.dat"), "digest line layout: 16 hex chars, two spaces, path")
		paths = append(paths, line[18:])
	}
	assert.True(t, sort.StringsAreSorted(paths), "paths must be sorted: %v", paths)

	rows := barRows(t, stderr)
	assert.Len(t, rows, 8, "one redraw per hashed file")
}

func TestHashNoMatchesSucceeds(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}
	t.Parallel()

	tp := newTestProject(t)
	stdout, stderr, err := tp.runSplit(tp.run("hash", "*.nope", "-q"))
	require.NoError(t, err, "hash failed:\n%s", stderr)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr, "no files means no bar and no digests")
}

func TestHashBadPatternFails(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}
	t.Parallel()

	tp := newTestProject(t)
	out, exitCode := tp.runExpectFailure("hash", "[")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, out, "bad pattern")
}

func TestHashZeroWorkersRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}
	t.Parallel()

	tp := newTestProject(t)
	out, exitCode := tp.runExpectFailure("hash", "*.txt", "--workers", "0")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, out, "error(s)")
}

func TestHashBaseFlagAnchorsPattern(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}
	t.Parallel()

	tp := newTestProject(t)
	tp.writeFile("data/x.txt", "payload")
	tp.writeFile("x.txt", "decoy")

	stdout, stderr, err := tp.runSplit(tp.run("hash", "*.txt", "--base", "data", "-q"))
	require.NoError(t, err, "hash failed:\n%s", stderr)

	want := fmt.Sprintf("%016x  x.txt\n", xxhash.Sum64String("payload"))
	assert.Equal(t, want, stdout, "digests are relative to --base")
}
