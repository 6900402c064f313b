package main

import (
	"os"

	"github.com/clems4ever/kmltools/cmd"
)

func main() {
	os.Exit(cmd.Run(cmd.NewGPX2KMLCommand("gpx2kml"), os.Args[1:]))
}
