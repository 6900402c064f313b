package main

import (
	"os"

	"github.com/clems4ever/kmltools/cmd"
)

func main() {
	os.Exit(cmd.Run(cmd.NewFixCommand("kmlfix"), os.Args[1:]))
}
