package main

import (
	"os"

	"github.com/Tanuahire/Alphabet-Learning-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
