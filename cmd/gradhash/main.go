// gradhash - blocked gradient images named by their average hash
//
// gradhash paints a grid of solid colour blocks stepping from one colour
// towards another and saves the result as <average hash>.png.
package main

import (
	"os"

	"github.com/jmylchreest/gradhash/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
