// Command lianlian generates, lists and auto-plays connect-the-pair levels.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
