package main

import (
	"os"

	"github.com/comalice/protectedx/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
