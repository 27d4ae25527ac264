package main

import (
	"os"

	"github.com/rpgo/ssbenefit/cmd/ssbenefit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
