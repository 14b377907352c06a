package main

import (
	"fmt"
	"os"

	"selfcare/cmd/selfcare/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "selfcare:", err)
		os.Exit(1)
	}
}
