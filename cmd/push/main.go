package main

import (
	"os"

	"github.com/pushlang/go-push/cmd/push/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
