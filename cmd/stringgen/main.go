package main

import (
	"os"

	"stringgen/cmd/stringgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
