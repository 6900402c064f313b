package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clems4ever/kmltools/internal/document"
	"github.com/clems4ever/kmltools/internal/track"
)

// NewGPX2KMLCommand converts a GPX file into a KML file beside it.
func NewGPX2KMLCommand(use string) *cobra.Command {
	return newToolCommand(use, tool{
		short:   "Convert gpx track file to kml",
		long:    `Convert every track of a GPX file into a path Placemark of a new KML file written beside the input.`,
		argName: "file.gpx",
		run: func(e *env, inputs []string) error {
			doc, err := document.Load(inputs[0], e.log)
			if err != nil {
				return err
			}
			if doc.Format != document.GPX {
				return &document.UnsupportedFormatError{Path: doc.Path, Ext: "kml"}
			}
			kml, err := track.FromGPX(doc.Root, doc.Base())
			if err != nil {
				return err
			}
			e.log.NodesFound("Placemark", len(kmlPlacemarks(kml)))
			_, err = document.Save(kml, outputPath(doc, doc.Base(), document.KML), e.write, e.log)
			return err
		},
	})
}

// NewKML2GPXCommand converts a KML file into a GPX file beside it.
func NewKML2GPXCommand(use string) *cobra.Command {
	return newToolCommand(use, tool{
		short:   "Convert kml track file to gpx",
		long:    `Convert every path Placemark of a KML file into a GPX track, and every point Placemark into a waypoint.`,
		argName: "file.kml",
		run: func(e *env, inputs []string) error {
			doc, err := document.Load(inputs[0], e.log)
			if err != nil {
				return err
			}
			kml, err := canonical(doc)
			if err != nil {
				return err
			}
			e.log.NodesFound("Placemark", len(kmlPlacemarks(kml)))
			gpx, err := track.ToGPX(kml)
			if err != nil {
				return err
			}
			_, err = document.Save(gpx, outputPath(doc, doc.Base(), document.GPX), e.write, e.log)
			return err
		},
	})
}
