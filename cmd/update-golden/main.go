package main

import (
	"fmt"
	"log"
	"os"

	"github.com/clems4ever/kmltools/internal/track"
	"github.com/clems4ever/kmltools/internal/tree"
)

// Paths are relative to the repository root.
const testdata = "internal/track/testdata/"

func main() {
	if _, err := os.Stat(testdata); os.IsNotExist(err) {
		log.Fatalf("%s not found. Please run this command from the repository root.", testdata)
	}

	regenerate("sample.gpx", "sample_golden.kml", func(root *tree.Node) (*tree.Node, error) {
		return track.FromGPX(root, "sample")
	})
	regenerate("loop.kml", "loop_golden.gpx", track.ToGPX)

	fmt.Println("Done. Golden files updated.")
}

func regenerate(input, output string, convert func(*tree.Node) (*tree.Node, error)) {
	fmt.Printf("Reading %s...\n", testdata+input)
	f, err := os.Open(testdata + input)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}
	defer f.Close()

	root, err := tree.Parse(f)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", input, err)
	}
	out, err := convert(root)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	fmt.Printf("Writing to %s...\n", testdata+output)
	if err := os.WriteFile(testdata+output, tree.Serialize(out), 0644); err != nil {
		log.Fatalf("Failed to write output file: %v", err)
	}
}
