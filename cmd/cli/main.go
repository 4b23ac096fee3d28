// consolestrip - console.log cleanup tool
//
// consolestrip removes console.log debug statements from a source file and
// writes the cleaned content back in place.
package main

import (
	"os"

	"github.com/ccollicutt/consolestrip/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
