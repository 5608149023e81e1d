package main

import (
	"os"

	"github.com/madnan/taksa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
