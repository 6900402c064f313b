package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clems4ever/kmltools/internal/tree"
)

func styleURLs(t *testing.T, root *tree.Node) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, pm := range tree.Find("Placemark", root) {
		if !pm.Has("styleUrl") {
			continue
		}
		name, _ := pm.ChildText("name")
		url, err := pm.ChildText("styleUrl")
		require.NoError(t, err)
		out[name] = url
	}
	return out
}

func TestFix(t *testing.T) {
	root := parseFile(t, "testdata/tracks.kml")
	reports, err := Fix(root)
	require.NoError(t, err)

	require.Len(t, reports, 2)
	assert.Equal(t, StyleReport{Placemark: "north.kml", StyleURL: "#redMap", Color: "ff0000ff", Palette: "Blue"}, reports[0])
	assert.Equal(t, StyleReport{Placemark: "south", StyleURL: "#grey", Color: "ff888888"}, reports[1])

	assert.Equal(t, map[string]string{
		"north.kml": "#styleMapBlue",
		"south":     "#grey",
	}, styleURLs(t, root))

	for _, p := range Palette {
		assert.Len(t, tree.FindByAttr("id", "style"+p.Name, root), 1, p.Name)
		assert.Len(t, tree.FindByAttr("id", "styleMap"+p.Name, root), 1, p.Name)
	}
}

func TestFix_Idempotent(t *testing.T) {
	root := parseFile(t, "testdata/tracks.kml")
	_, err := Fix(root)
	require.NoError(t, err)
	first := string(tree.Serialize(root))

	again := reparse(t, root)
	reports, err := Fix(again)
	require.NoError(t, err)
	assert.Equal(t, "Blue", reports[0].Palette)
	assert.Equal(t, first, string(tree.Serialize(again)))
}

func TestFix_UnknownStyle(t *testing.T) {
	src := `<kml><Document><name>x</name><Placemark><name>p</name><styleUrl>#missing</styleUrl></Placemark></Document></kml>`
	root := parse(t, src)
	reports, err := Fix(root)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "", reports[0].Color)
	assert.Equal(t, map[string]string{"p": "#missing"}, styleURLs(t, root))
}

func TestFix_StyleMapCycle(t *testing.T) {
	src := `<kml><Document><name>x</name>
	<StyleMap id="a"><Pair><key>normal</key><styleUrl>#b</styleUrl></Pair></StyleMap>
	<StyleMap id="b"><Pair><key>normal</key><styleUrl>#a</styleUrl></Pair></StyleMap>
	<Placemark><name>p</name><styleUrl>#a</styleUrl></Placemark></Document></kml>`
	reports, err := Fix(parse(t, src))
	require.NoError(t, err)
	assert.Equal(t, "", reports[0].Color)
}
