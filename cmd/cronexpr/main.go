package main

import (
	"os"

	"github.com/cratesland/cronexpr/internal/cmd"
)

func main() {
	cmd.SetOutput(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
