package track

import (
	"fmt"
	"strings"

	"github.com/clems4ever/kmltools/internal/tree"
)

// Reverse reverses the point order of every path in kml in place and
// appends ReverseSuffix to the document name and to the name of every
// Placemark holding a path. It returns the number of paths reversed.
//
// Reversing twice restores the coordinates but not the names.
func Reverse(kml *tree.Node) (int, error) {
	doc, err := kmlDocument(kml)
	if err != nil {
		return 0, err
	}
	name, err := doc.ChildText("name")
	if err != nil {
		return 0, err
	}
	doc.SetText("name", withSuffix(name, ReverseSuffix))

	paths := tree.Find("LineString", doc)
	for _, ls := range paths {
		if !ls.Has("coordinates") {
			continue
		}
		c, err := ls.ChildText("coordinates")
		if err != nil {
			return 0, err
		}
		ls.SetText("coordinates", ReverseCoordinates(c))
	}

	for _, pm := range tree.Find("Placemark", doc) {
		if !pm.Has("name") || len(tree.Find("LineString", pm)) == 0 {
			continue
		}
		n, err := pm.ChildText("name")
		if err != nil {
			return 0, err
		}
		pm.SetText("name", withSuffix(n, ReverseSuffix))
	}
	return len(paths), nil
}

// Split returns one fresh document per Placemark holding a path, in
// document order. Placemarks without a path, such as waypoints, are left
// out.
func Split(kml *tree.Node) ([]*tree.Node, error) {
	doc, err := kmlDocument(kml)
	if err != nil {
		return nil, err
	}

	var out []*tree.Node
	for i, pm := range tree.Find("Placemark", doc) {
		payload, ok, err := pathPayload(pm)
		if err != nil {
			return nil, fmt.Errorf("placemark %d: %w", i, err)
		}
		if !ok {
			continue
		}
		name, err := pm.ChildText("name")
		if err != nil {
			return nil, fmt.Errorf("placemark %d: %w", i, err)
		}
		name, _ = trimKMLExt(name)

		root := NewKML(name, SplitTheme)
		setCoordinates(root, payload)
		out = append(out, root)
	}
	return out, nil
}

// DocumentError reports which of several input documents an operation
// failed on.
type DocumentError struct {
	Index int
	Err   error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %d: %v", e.Index, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// JoinName derives the name of a joined document from the names of its
// inputs.
func JoinName(docs ...*tree.Node) (string, error) {
	names := make([]string, 0, len(docs))
	for i, d := range docs {
		doc, err := kmlDocument(d)
		if err != nil {
			return "", &DocumentError{Index: i, Err: err}
		}
		name, err := doc.ChildText("name")
		if err != nil {
			return "", &DocumentError{Index: i, Err: err}
		}
		name, _ = trimKMLExt(name)
		names = append(names, name)
	}
	return strings.Join(names, "_"), nil
}

// Join concatenates the paths of docs, in order, into a single path in a
// fresh document named name plus JoinSuffix. Point Placemarks of the inputs
// follow the joined path.
func Join(name string, docs ...*tree.Node) (*tree.Node, error) {
	var payloads []string
	var waypoints []*tree.Node
	for i, d := range docs {
		doc, err := kmlDocument(d)
		if err != nil {
			return nil, &DocumentError{Index: i, Err: err}
		}
		for _, ls := range tree.Find("LineString", doc) {
			c, err := lineCoordinates(ls)
			if err != nil {
				return nil, &DocumentError{Index: i, Err: err}
			}
			if c != "" {
				payloads = append(payloads, c)
			}
		}
		for _, pm := range tree.Find("Placemark", doc) {
			if pm.Has("Point") && len(tree.Find("LineString", pm)) == 0 {
				waypoints = append(waypoints, pm.Clone())
			}
		}
	}

	root := NewKML(withSuffix(name, JoinSuffix), JoinTheme)
	setCoordinates(root, strings.TrimSpace(strings.Join(payloads, " ")))

	doc := mustChild(root, "kml", "Document")
	for _, wp := range waypoints {
		doc.Append("Placemark", wp)
	}
	return root, nil
}
