package main

import (
	"os"

	"github.com/menusmith/menusmith/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
