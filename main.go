package main

import (
	"os"

	"github.com/lanekit/lanechart/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
