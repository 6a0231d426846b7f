// Package main is the entry point for the coopsal CLI.
package main

import (
	"os"

	"github.com/jmylchreest/coopsal/cmd/coopsal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
