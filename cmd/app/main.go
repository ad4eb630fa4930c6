package main

import (
	"os"

	"github.com/Zagato27/Lapa-sub000/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
