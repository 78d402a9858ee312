package main

import (
	"os"

	"github.com/fkhayef/splitledger/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
