package main

import (
	"os"

	"github.com/verifykit/stringver/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
