// Package main is the entry point for the cbook CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/clientbook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
