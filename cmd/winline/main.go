package main

import (
	"os"

	"winline/cmd/winline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
