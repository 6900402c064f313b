package main

import "github.com/clems4ever/kmltools/cmd"

func main() {
	cmd.Execute()
}
