package main

import (
	"os"

	"github.com/smallyu/go-weierstrass/cmd/keygen/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
