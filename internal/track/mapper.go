package track

import (
	"fmt"
	"strings"

	"github.com/clems4ever/kmltools/internal/tree"
)

// FromGPX builds a canonical KML document titled title holding one path
// Placemark per GPX track, in track order. Unnamed tracks are called
// track_<index>.
func FromGPX(gpx *tree.Node, title string) (*tree.Node, error) {
	root := NewKML(title, ConvertTheme)
	doc := mustChild(root, "kml", "Document")

	var placemarks []*tree.Node
	for i, trk := range tree.Find("trk", gpx) {
		name := fmt.Sprintf("track_%d", i)
		if trk.Has("name") {
			n, err := trk.ChildText("name")
			if err != nil {
				return nil, fmt.Errorf("track %d: %w", i, err)
			}
			name = n
		}

		var tokens []string
		for _, seg := range tree.Find("trkseg", trk) {
			for j, pt := range tree.Find("trkpt", seg) {
				p, err := gpxPoint(pt)
				if err != nil {
					return nil, fmt.Errorf("track %q point %d: %w", name, j, err)
				}
				tokens = append(tokens, p.String())
			}
		}

		pm := newPlacemark(name, strings.Join(tokens, " "))
		if trk.Has("desc") {
			desc, err := trk.ChildText("desc")
			if err == nil && desc != "" {
				pm.SetText("description", desc)
			}
		}
		placemarks = append(placemarks, pm)
	}

	doc.Set("Placemark", tree.Many(placemarks...))
	return root, nil
}

func gpxPoint(pt *tree.Node) (Point, error) {
	lat, ok := pt.Attr("lat")
	if !ok {
		return Point{}, &tree.MissingFieldError{Field: tree.AttrPrefix + "lat"}
	}
	lon, ok := pt.Attr("lon")
	if !ok {
		return Point{}, &tree.MissingFieldError{Field: tree.AttrPrefix + "lon"}
	}
	ele, err := pt.ChildText("ele")
	if err != nil {
		return Point{}, err
	}
	return Point{Lon: lon, Lat: lat, Ele: ele}, nil
}

// ToGPX builds a GPX document from a canonical KML document. Every path
// Placemark becomes a track named after it with one segment per path;
// Point Placemarks become waypoints. Other Placemarks are skipped.
func ToGPX(kml *tree.Node) (*tree.Node, error) {
	doc, err := kmlDocument(kml)
	if err != nil {
		return nil, err
	}

	var wpts, trks []*tree.Node
	for i, pm := range tree.Find("Placemark", doc) {
		paths := tree.Find("LineString", pm)
		if len(paths) == 0 && !pm.Has("Point") {
			continue
		}
		name, err := pm.ChildText("name")
		if err != nil {
			return nil, fmt.Errorf("placemark %d: %w", i, err)
		}

		if len(paths) == 0 {
			wpt, err := gpxWaypoint(pm, name)
			if err != nil {
				return nil, fmt.Errorf("placemark %q: %w", name, err)
			}
			wpts = append(wpts, wpt)
			continue
		}

		trk := tree.NewElement()
		trk.SetText("name", name)
		if desc := description(pm); desc != "" {
			trk.SetText("desc", desc)
		}
		for _, ls := range paths {
			seg, err := gpxSegment(ls)
			if err != nil {
				return nil, fmt.Errorf("placemark %q: %w", name, err)
			}
			trk.Append("trkseg", seg)
		}
		trks = append(trks, trk)
	}

	root := NewGPX()
	g := mustChild(root, "gpx")
	g.Set("wpt", tree.Many(wpts...))
	g.Set("trk", tree.Many(trks...))
	return root, nil
}

func gpxSegment(ls *tree.Node) (*tree.Node, error) {
	payload, err := lineCoordinates(ls)
	if err != nil {
		return nil, err
	}
	points, err := ParseCoordinates(payload)
	if err != nil {
		return nil, err
	}
	pts := make([]*tree.Node, len(points))
	for i, p := range points {
		pts[i] = gpxTrackPoint(p)
	}
	seg := tree.NewElement()
	seg.Set("trkpt", tree.Many(pts...))
	return seg, nil
}

func gpxTrackPoint(p Point) *tree.Node {
	pt := tree.NewElement()
	pt.SetAttr("lat", p.Lat)
	pt.SetAttr("lon", p.Lon)
	pt.SetText("ele", p.Ele)
	return pt
}

func gpxWaypoint(pm *tree.Node, name string) (*tree.Node, error) {
	point, err := pm.Child("Point")
	if err != nil {
		return nil, err
	}
	payload, err := point.ChildText("coordinates")
	if err != nil {
		return nil, err
	}
	points, err := ParseCoordinates(payload)
	if err != nil {
		return nil, err
	}
	if len(points) != 1 {
		return nil, &MalformedCoordinateError{Token: payload}
	}
	wpt := gpxTrackPoint(points[0])
	wpt.SetText("name", name)
	if desc := description(pm); desc != "" {
		wpt.SetText("desc", desc)
	}
	return wpt, nil
}

// lineCoordinates returns the payload of a LineString. An empty LineString
// has no payload.
func lineCoordinates(ls *tree.Node) (string, error) {
	if !ls.Has("coordinates") {
		return "", nil
	}
	return ls.ChildText("coordinates")
}

// pathPayload joins the payloads of every path under a Placemark. The
// boolean is false when the Placemark has no path.
func pathPayload(pm *tree.Node) (string, bool, error) {
	paths := tree.Find("LineString", pm)
	if len(paths) == 0 {
		return "", false, nil
	}
	var payloads []string
	for _, ls := range paths {
		c, err := lineCoordinates(ls)
		if err != nil {
			return "", true, err
		}
		if c != "" {
			payloads = append(payloads, c)
		}
	}
	return strings.Join(payloads, " "), true, nil
}

func description(pm *tree.Node) string {
	if !pm.Has("description") {
		return ""
	}
	d, err := pm.ChildText("description")
	if err != nil {
		return ""
	}
	return PlainText(d)
}
