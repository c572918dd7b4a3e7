package main

import (
	"os"

	"github.com/pyforge/pyinit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
