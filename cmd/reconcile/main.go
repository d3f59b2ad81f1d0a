package main

import (
	"os"

	"github.com/forestrie/go-reconcile/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
