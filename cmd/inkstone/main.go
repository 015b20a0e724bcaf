// Command inkstone is the entrypoint for the inkstone CLI.
package main

import (
	"os"

	"github.com/inkstone-cli/inkstone/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
