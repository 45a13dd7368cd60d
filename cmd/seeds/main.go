// Command seeds renders table definitions from the command line.
package main

import (
	"os"

	"github.com/go-seeds/seeds/cmd/seeds/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
