package config

import (
	"fmt"
	"os"
)

// starterTOML is the annotated configuration written by `loopbar config init`.
// Its styling is deliberately opinionated (colored fill on a dim track)
// rather than mirroring the plain built-in defaults; every value still
// passes Validate cleanly.
const starterTOML = `# loopbar.toml -- progress bar configuration.
# Values here override the built-in defaults; environment variables
# (LOOPBAR_*) and CLI flags override values here.

[bar]
# Characters drawn for completed and remaining cells. Each must occupy
# exactly one terminal column.
fill_char = "="
track_char = " "

# Colors for the two cell kinds. Run 'loopbar colors' for the palette;
# unknown names fall back to uncolored output.
fill_color = "green"
track_color = "dark-gray"

[output]
# Terminal width in columns. 0 auto-detects (stdout, then stderr, then $COLUMNS).
width = 0

# Disable ANSI escapes entirely. Setting NO_COLOR does the same.
no_color = false

[hash]
# Concurrent file digests during 'loopbar hash'.
workers = 4
`

// WriteStarter writes an annotated starter loopbar.toml at path. Unless
// force is set, an existing file is left untouched and an error returned:
// init must never clobber a tuned configuration.
func WriteStarter(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, []byte(starterTOML), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
