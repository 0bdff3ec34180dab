package main

import (
	"os"

	"modelscore/cmd/modelscore/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
