// Command loopbar draws a self-overwriting progress bar on a single
// terminal line while a loop runs to completion.
package main

import (
	"os"

	"github.com/loopbar/loopbar/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
