package main

import (
	"os"

	"github.com/ekuzmin/vokab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
