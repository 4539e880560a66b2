package main

import (
	"os"

	"github.com/yamabiko-bot/yamabiko/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
