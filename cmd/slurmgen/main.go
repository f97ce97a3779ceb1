package main

import (
	"os"

	"github.com/psantana5/slurmgen/cmd/slurmgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
