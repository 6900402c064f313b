package track

import (
	"strings"

	"github.com/clems4ever/kmltools/internal/tree"
)

// PaletteColor is one of the fixed line colors installed by Fix.
type PaletteColor struct {
	Name  string
	Color string // aabbggrr
}

// Palette lists the colors Fix knows, in the order their styles are added.
var Palette = []PaletteColor{
	{Name: "Magenta", Color: "ffff00ff"},
	{Name: "Blue", Color: "ff0000ff"},
	{Name: "Green", Color: "ff00ff00"},
	{Name: "Orange", Color: "ffffaa00"},
}

// StyleReport describes what Fix found for one Placemark.
type StyleReport struct {
	Placemark string
	StyleURL  string
	Color     string // empty when the style has no line color
	Palette   string // empty when Color is not in the palette
}

// Fix adds the palette styles to kml and points every Placemark whose line
// color is in the palette at the matching palette StyleMap.
func Fix(kml *tree.Node) ([]StyleReport, error) {
	doc, err := kmlDocument(kml)
	if err != nil {
		return nil, err
	}
	installPalette(doc)

	var reports []StyleReport
	for _, pm := range tree.Find("Placemark", doc) {
		if !pm.Has("styleUrl") {
			continue
		}
		url, err := pm.ChildText("styleUrl")
		if err != nil {
			return nil, err
		}
		r := StyleReport{StyleURL: url}
		if pm.Has("name") {
			r.Placemark, _ = pm.ChildText("name")
		}
		r.Color = resolveColor(doc, url, 0)
		r.Palette = paletteName(r.Color)
		if r.Palette != "" {
			pm.SetText("styleUrl", "#styleMap"+r.Palette)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// resolveColor follows a styleUrl through StyleMaps to the line color of
// the Style it ends at.
func resolveColor(doc *tree.Node, url string, depth int) string {
	id := strings.TrimPrefix(strings.TrimSpace(url), "#")
	if id == "" || depth > 4 {
		return ""
	}
	found := tree.FindByAttr("id", id, doc)
	if len(found) == 0 {
		return ""
	}
	el := found[0]

	if pairs := tree.Find("Pair", el); len(pairs) > 0 {
		next := pairs[0]
		for _, p := range pairs {
			if k, err := p.ChildText("key"); err == nil && k == "normal" {
				next = p
				break
			}
		}
		u, err := next.ChildText("styleUrl")
		if err != nil {
			return ""
		}
		return resolveColor(doc, u, depth+1)
	}

	for _, ls := range tree.Find("LineStyle", el) {
		if ls.Has("color") {
			c, err := ls.ChildText("color")
			if err == nil {
				return strings.ToLower(c)
			}
		}
	}
	return ""
}

func paletteName(color string) string {
	for _, p := range Palette {
		if p.Color == color {
			return p.Name
		}
	}
	return ""
}

func installPalette(doc *tree.Node) {
	for _, p := range Palette {
		if len(tree.FindByAttr("id", "style"+p.Name, doc)) > 0 {
			continue
		}
		ls := tree.NewElement()
		ls.SetText("color", p.Color)
		ls.SetText("width", "3")
		style := tree.NewElement()
		style.SetAttr("id", "style"+p.Name)
		style.SetNode("LineStyle", ls)
		doc.Append("Style", style)

		sm := tree.NewElement()
		sm.SetAttr("id", "styleMap"+p.Name)
		for _, key := range []string{"normal", "highlight"} {
			pair := tree.NewElement()
			pair.SetText("key", key)
			pair.SetText("styleUrl", "#style"+p.Name)
			sm.Append("Pair", pair)
		}
		doc.Append("StyleMap", sm)
	}
}
