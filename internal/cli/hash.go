package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/loopbar/loopbar"
	"github.com/loopbar/loopbar/internal/logging"
)

var (
	flagWorkers int
	hashBase    string
)

var hashCmd = &cobra.Command{
	Use:   "hash <pattern>",
	Short: "Hash files matching a glob pattern, with progress",
	Long: `Hash every file matching a glob pattern with 64-bit xxHash and print
one "<digest>  <path>" line per file to stdout, sorted by path.

Patterns support doublestar globs, so "**/*.go" matches recursively. Files
are hashed by a bounded worker pool; the progress bar on stderr advances as
each file completes, which keeps stdout clean for piping.`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

func init() {
	hashCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent hashing workers (0 uses config)")
	hashCmd.Flags().StringVar(&hashBase, "base", ".", "Directory the pattern is matched against")
	registerAppearanceFlags(hashCmd)
	rootCmd.AddCommand(hashCmd)
}

// fileDigest is one hashed file: the slash-separated path relative to the
// base directory, its xxHash64 sum, and its size in bytes.
type fileDigest struct {
	path string
	sum  uint64
	size int64
}

func runHash(cmd *cobra.Command, args []string) error {
	pattern := args[0]

	rc, err := resolveForBar(cmd, "hash")
	if err != nil {
		return err
	}
	logger := logging.New("hash")

	matches, err := doublestar.Glob(os.DirFS(hashBase), pattern)
	if err != nil {
		return fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	// Keep regular files only; globs also match directories.
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, statErr := os.Stat(filepath.Join(hashBase, filepath.FromSlash(m)))
		if statErr != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)

	if len(files) == 0 {
		logger.Info("no files match", "pattern", pattern, "base", hashBase)
		return nil
	}

	bar, err := loopbar.New(int64(len(files)), barOptions(rc)...)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rc.Config.Hash.Workers)

	// Workers send each finished digest to the collector; the launcher
	// goroutine closes the channel once every worker has returned.
	results := make(chan fileDigest)
	go func() {
		for _, path := range files {
			path := path
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				sum, size, err := digestFile(filepath.Join(hashBase, filepath.FromSlash(path)))
				if err != nil {
					return fmt.Errorf("hashing %s: %w", path, err)
				}
				select {
				case results <- fileDigest{path: path, sum: sum, size: size}:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}
		_ = g.Wait()
		close(results)
	}()

	// Only the collector touches the bar, so rendering stays serialized no
	// matter how many workers finish at once.
	progress := cmd.ErrOrStderr()
	start := time.Now()
	digests := make([]fileDigest, 0, len(files))
	var totalBytes int64
	for r := range results {
		digests = append(digests, r)
		totalBytes += r.size
		fmt.Fprint(progress, bar.Advance())
	}
	fmt.Fprintln(progress)

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(digests, func(i, j int) bool { return digests[i].path < digests[j].path })
	out := cmd.OutOrStdout()
	for _, d := range digests {
		fmt.Fprintf(out, "%016x  %s\n", d.sum, d.path)
	}

	logger.Info("hashed",
		"files", len(digests),
		"bytes", humanize.Bytes(uint64(totalBytes)),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// digestFile streams one file through xxHash64 and reports its size.
func digestFile(path string) (uint64, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	h := xxhash.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return 0, 0, err
	}
	return h.Sum64(), n, nil
}
