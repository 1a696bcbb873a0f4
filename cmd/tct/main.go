// Package main is the entry point for the tct CLI client.
package main

import (
	"github.com/donaldgifford/tcg-collection-tracker/cmd/tct/cmd"
)

func main() {
	cmd.Execute()
}
