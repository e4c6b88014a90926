package main

// Entry point: runs the Cobra commands and exits 1 on error

import (
	"fmt"
	"os"

	"frontier-report/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
