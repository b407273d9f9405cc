package main

import (
	"os"

	"herdbook/cmd/herdctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
