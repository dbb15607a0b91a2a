package main

import (
	"os"

	"github.com/Absolute-Martial/CSOS/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
