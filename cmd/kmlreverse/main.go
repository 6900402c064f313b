package main

import (
	"os"

	"github.com/clems4ever/kmltools/cmd"
)

func main() {
	os.Exit(cmd.Run(cmd.NewReverseCommand("kmlreverse"), os.Args[1:]))
}
