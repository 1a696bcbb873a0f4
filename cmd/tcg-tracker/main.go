// Package main is the entry point for the tcg-tracker server.
package main

import (
	"os"

	"github.com/donaldgifford/tcg-collection-tracker/cmd/tcg-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
