package cmd

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clems4ever/kmltools/internal/document"
	"github.com/clems4ever/kmltools/internal/track"
	"github.com/clems4ever/kmltools/internal/tree"
)

func kmlPlacemarks(root *tree.Node) []*tree.Node {
	return tree.Find("Placemark", root)
}

// NewReverseCommand reverses the paths of a KML file.
func NewReverseCommand(use string) *cobra.Command {
	return newToolCommand(use, tool{
		short:   "Reverse track of kml file",
		long:    `Reverse the point order of every path in a KML (or GPX) file and write <name>_reverse.kml beside it.`,
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
			n, err := track.Reverse(kml)
			if err != nil {
				return err
			}
			e.log.NodesFound("LineString", n)
			_, err = document.Save(kml, outputPath(doc, doc.Base()+track.ReverseSuffix, document.KML), e.write, e.log)
			return err
		},
	})
}

// NewSplitCommand writes one KML file per path of the input.
func NewSplitCommand(use string) *cobra.Command {
	return newToolCommand(use, tool{
		short:   "Split a kml file with multiple paths into single path files",
		long:    `Write one KML file per path Placemark of the input, named after the Placemark. Waypoints are not split out.`,
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
			parts, err := track.Split(kml)
			if err != nil {
				return err
			}
			for _, part := range parts {
				name, err := documentName(part)
				if err != nil {
					return err
				}
				path := outputPath(doc, document.SafeName(name), document.KML)
				if _, err := document.Save(part, path, e.write, e.log); err != nil {
					return err
				}
			}
			return nil
		},
	})
}

// NewJoinCommand concatenates the paths of one or more files into one.
func NewJoinCommand(use string) *cobra.Command {
	return newToolCommand(use, tool{
		short:   "Concatenate the paths of kml files into a single path",
		long:    `Join every path of the given KML (or GPX) files, in order, into one path. Waypoints are kept.`,
		argName: "file.kml",
		multi:   true,
		run: func(e *env, inputs []string) error {
			var roots []*tree.Node
			var bases []string
			var first *document.Document
			paths := 0
			for _, in := range inputs {
				doc, err := document.Load(in, e.log)
				if err != nil {
					return &inputError{path: in, err: err}
				}
				kml, err := canonical(doc)
				if err != nil {
					return &inputError{path: in, err: err}
				}
				if first == nil {
					first = doc
				}
				paths += len(tree.Find("LineString", kml))
				roots = append(roots, kml)
				bases = append(bases, doc.Base())
			}

			name, err := track.JoinName(roots...)
			if err != nil {
				return joinInputError(err, inputs)
			}
			joined, err := track.Join(name, roots...)
			if err != nil {
				return joinInputError(err, inputs)
			}
			e.log.NodesFound("LineString", paths)
			path := filepath.Join(first.Dir(), strings.Join(bases, "_")+track.JoinSuffix+document.KML.Ext())
			_, err = document.Save(joined, path, e.write, e.log)
			return err
		},
	})
}

// NewFixCommand normalizes the line styles of a KML file to the palette.
func NewFixCommand(use string) *cobra.Command {
	return newToolCommand(use, tool{
		short:   "Inspect kml file and normalize its line styles",
		long:    `Report the line color of every Placemark and point those in the palette (Magenta, Blue, Green, Orange) at shared palette styles. Writes <name>_fix.kml.`,
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
			reports, err := track.Fix(kml)
			if err != nil {
				return err
			}
			for _, r := range reports {
				e.log.StyleResolved(r.Placemark, r.Color, r.Palette)
			}
			_, err = document.Save(kml, outputPath(doc, doc.Base()+"_fix", document.KML), e.write, e.log)
			return err
		},
	})
}

// joinInputError attaches the path of the input a join step failed on.
func joinInputError(err error, inputs []string) error {
	var de *track.DocumentError
	if errors.As(err, &de) && de.Index < len(inputs) {
		return &inputError{path: inputs[de.Index], err: de.Err}
	}
	return err
}

func documentName(root *tree.Node) (string, error) {
	kml, err := root.Child("kml")
	if err != nil {
		return "", err
	}
	doc, err := kml.Child("Document")
	if err != nil {
		return "", err
	}
	return doc.ChildText("name")
}
