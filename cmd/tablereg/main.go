// Package main provides the tablereg CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/tablereg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
