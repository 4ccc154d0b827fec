// Package main provides the entry point for the recsize recordsize suggester CLI.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
