package main

import (
	"fmt"
	"os"

	"github.com/beesaferoot/blogly/internal/commands"
	"github.com/beesaferoot/blogly/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
