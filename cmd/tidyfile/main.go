// Command tidyfile is the filename normalizer and folder filing CLI.
package main

import (
	"os"

	"github.com/tidyfile/tidyfile/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
