package main

import (
	"os"

	"github.com/relvet/relvet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
