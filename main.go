package main

import (
	"os"

	"github.com/DefiantLabs/explorer-tax-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
