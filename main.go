package main

import (
	"os"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
