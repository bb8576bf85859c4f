// Package main provides the entry point for the folder-sizes CLI, a
// concurrent directory tree size scanner.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}
