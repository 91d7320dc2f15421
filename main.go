package main

import (
	"os"

	"github.com/marksaft/gramiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
