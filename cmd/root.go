package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kmltools",
	Short: "Tools to convert and rework KML and GPX tracks",
	Long: `kmltools converts tracks between GPX and KML and reworks KML paths:
reverse them, split a file into one file per path, join several files into
a single path, or normalize line styles. Results are written beside the
input and never replace an existing file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	os.Exit(Run(rootCmd, os.Args[1:]))
}

func init() {
	rootCmd.AddCommand(NewGPX2KMLCommand("gpx2kml"))
	rootCmd.AddCommand(NewKML2GPXCommand("kml2gpx"))
	rootCmd.AddCommand(NewReverseCommand("reverse"))
	rootCmd.AddCommand(NewSplitCommand("split"))
	rootCmd.AddCommand(NewJoinCommand("join"))
	rootCmd.AddCommand(NewFixCommand("fix"))
	rootCmd.AddCommand(NewConfigCommand())
}
