package main

import (
	"os"

	"github.com/mindlab/mindlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
