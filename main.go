package main

import (
	"os"

	"github.com/mathdash/mathdash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
