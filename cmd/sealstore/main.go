package main

import (
	"os"

	"sealstore/cmd/sealstore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
