package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/edgesort/cli"
)

func main() {
	if err := cli.New(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "edgesort:", err)
		os.Exit(1)
	}
}
