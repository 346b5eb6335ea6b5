package main

import (
	"os"

	"github.com/robowhales/reefscout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
