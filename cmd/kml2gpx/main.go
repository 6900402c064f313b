package main

import (
	"os"

	"github.com/clems4ever/kmltools/cmd"
)

func main() {
	os.Exit(cmd.Run(cmd.NewKML2GPXCommand("kml2gpx"), os.Args[1:]))
}
