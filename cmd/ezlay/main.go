package main

import (
	"os"

	"github.com/ezlay/ezlay/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
