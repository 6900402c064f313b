// Package track converts between the KML and GPX document shapes and
// implements the path edits (reverse, split, join, style fix) on top of the
// tree model.
package track

import (
	"fmt"
	"strings"

	"github.com/clems4ever/kmltools/internal/tree"
)

const (
	ReverseSuffix = "_reverse"
	JoinSuffix    = "_join"

	defaultStyleURL = "#sm_default"
)

const kmlTemplate = `<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:gx="http://www.google.com/kml/ext/2.2" xmlns:kml="http://www.opengis.net/kml/2.2" xmlns:atom="http://www.w3.org/2005/Atom">
<Document>
	<name>track_template.kml</name>
	<StyleMap id="sm_default">
		<Pair>
			<key>normal</key>
			<styleUrl>#s_default</styleUrl>
		</Pair>
		<Pair>
			<key>highlight</key>
			<styleUrl>#s_default_hl</styleUrl>
		</Pair>
	</StyleMap>
	<Style id="s_default">
		<LineStyle>
			<color>ff0000ff</color>
			<width>3</width>
		</LineStyle>
	</Style>
	<Style id="s_default_hl">
		<LineStyle>
			<color>ff0000ff</color>
			<width>3</width>
		</LineStyle>
	</Style>
	<Placemark>
		<name>track_template</name>
		<styleUrl>#sm_default</styleUrl>
		<LineString>
			<tessellate>1</tessellate>
			<coordinates>
			</coordinates>
		</LineString>
	</Placemark>
</Document>
</kml>`

const gpxTemplate = `<gpx version="1.0" creator="kmltools" xmlns="http://www.topografix.com/GPX/1/0">
</gpx>`

// LineStyle is the color (aabbggrr) and width of a drawn path.
type LineStyle struct {
	Color string
	Width string
}

// Theme holds the normal and highlighted line styles of a new document.
type Theme struct {
	Normal    LineStyle
	Highlight LineStyle
}

var (
	ConvertTheme = Theme{
		Normal:    LineStyle{Color: "ff0000ff", Width: "3"},
		Highlight: LineStyle{Color: "ff0000ff", Width: "3"},
	}
	JoinTheme = Theme{
		Normal:    LineStyle{Color: "99ffac59", Width: "6"},
		Highlight: LineStyle{Color: "ff0000ff", Width: "3"},
	}
	SplitTheme = Theme{
		Normal:    LineStyle{Color: "ffaa00ff", Width: "3"},
		Highlight: LineStyle{Color: "ffaa00ff", Width: "3"},
	}
)

// NewKML returns a fresh canonical document titled name with a single empty
// Placemark of the same name.
func NewKML(name string, theme Theme) *tree.Node {
	root := mustParse(kmlTemplate)
	doc := mustChild(root, "kml", "Document")
	doc.SetText("name", name)

	pm := mustChild(doc, "Placemark")
	pm.SetText("name", name)

	setLineStyle(doc, "s_default", theme.Normal)
	setLineStyle(doc, "s_default_hl", theme.Highlight)
	return root
}

// NewGPX returns a fresh GPX document with no tracks.
func NewGPX() *tree.Node {
	return mustParse(gpxTemplate)
}

func setLineStyle(doc *tree.Node, id string, style LineStyle) {
	for _, s := range tree.FindByAttr("id", id, doc) {
		ls := mustChild(s, "LineStyle")
		ls.SetText("color", style.Color)
		ls.SetText("width", style.Width)
	}
}

// newPlacemark builds a path Placemark in the shape of the template one.
func newPlacemark(name, coordinates string) *tree.Node {
	ls := tree.NewElement()
	ls.SetText("tessellate", "1")
	ls.SetText("coordinates", coordinates)

	pm := tree.NewElement()
	pm.SetText("name", name)
	pm.SetText("styleUrl", defaultStyleURL)
	pm.SetNode("LineString", ls)
	return pm
}

// setCoordinates fills the path of the template Placemark.
func setCoordinates(root *tree.Node, payload string) {
	pm := mustChild(root, "kml", "Document", "Placemark")
	mustChild(pm, "LineString").SetText("coordinates", payload)
}

// kmlDocument returns the Document element of a parsed KML file.
func kmlDocument(root *tree.Node) (*tree.Node, error) {
	kml, err := root.Child("kml")
	if err != nil {
		return nil, err
	}
	return kml.Child("Document")
}

// withSuffix appends suffix to name, before a trailing .kml if there is one.
func withSuffix(name, suffix string) string {
	if base, ok := trimKMLExt(name); ok {
		return base + suffix + name[len(base):]
	}
	return name + suffix
}

func trimKMLExt(name string) (string, bool) {
	if strings.HasSuffix(strings.ToLower(name), ".kml") {
		return name[:len(name)-len(".kml")], true
	}
	return name, false
}

func mustParse(src string) *tree.Node {
	root, err := tree.ParseString(src)
	if err != nil {
		panic(fmt.Sprintf("track: bad built-in template: %v", err))
	}
	return root
}

func mustChild(n *tree.Node, path ...string) *tree.Node {
	for _, tag := range path {
		c, err := n.Child(tag)
		if err != nil {
			panic(fmt.Sprintf("track: template lookup %v: %v", path, err))
		}
		n = c
	}
	return n
}
