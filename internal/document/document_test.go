package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clems4ever/kmltools/internal/logger"
	"github.com/clems4ever/kmltools/internal/tree"
)

const loopKML = `<?xml version="1.0"?>
<kml xmlns="http://www.opengis.net/kml/2.2"><Document><name>loop</name>
<Placemark><name>loop</name><LineString><coordinates>1,2,0 3,4,0</coordinates></LineString></Placemark>
</Document></kml>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a/track.kml", KML, false},
		{"track.GPX", GPX, false},
		{"track.Kml", KML, false},
		{"track.kmz", 0, true},
		{"track", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				var uerr *UnsupportedFormatError
				require.True(t, errors.As(err, &uerr))
				assert.ErrorIs(t, err, ErrUnsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "loop.kml", loopKML)

	doc, err := Load(path, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, KML, doc.Format)
	assert.Equal(t, "loop", doc.Base())
	assert.Equal(t, dir, doc.Dir())
	assert.Len(t, tree.Find("Placemark", doc.Root), 1)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.kml"), logger.Discard())
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		sub := filepath.Join(dir, "folder.kml")
		require.NoError(t, os.Mkdir(sub, 0755))
		_, err := Load(sub, logger.Discard())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, dir, "track.txt", loopKML)
		_, err := Load(path, logger.Discard())
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("malformed xml", func(t *testing.T) {
		path := writeFile(t, dir, "broken.kml", "<kml><Document></kml>")
		_, err := Load(path, logger.Discard())
		var perr *tree.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, path, perr.Source)
	})

	t.Run("wrong root", func(t *testing.T) {
		path := writeFile(t, dir, "mislabelled.gpx", loopKML)
		_, err := Load(path, logger.Discard())
		assert.ErrorIs(t, err, tree.ErrMissingField)
	})
}

func TestAvailablePath(t *testing.T) {
	dir := t.TempDir()
	preferred := filepath.Join(dir, "loop_reverse.kml")
	assert.Equal(t, preferred, AvailablePath(preferred))

	writeFile(t, dir, "loop_reverse.kml", "x")
	writeFile(t, dir, "loop_reverse_1.kml", "x")
	assert.Equal(t, filepath.Join(dir, "loop_reverse_2.kml"), AvailablePath(preferred))
}

func TestSave_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "loop.kml", loopKML)

	doc, err := Load(src, logger.Discard())
	require.NoError(t, err)

	got, err := Save(doc.Root, src, tree.WriteOptions{}, logger.Discard())
	require.NoError(t, err)
	assert.NotEqual(t, src, got)
	assert.Equal(t, filepath.Join(dir, "loop_1.kml"), got)

	orig, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, loopKML, string(orig), "the existing file is untouched")

	written, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, string(tree.Serialize(doc.Root)), string(written))

	second, err := Save(doc.Root, src, tree.WriteOptions{}, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "loop_2.kml"), second)
}

func TestSave_ReloadsAsSameTree(t *testing.T) {
	dir := t.TempDir()
	doc, err := Load(writeFile(t, dir, "loop.kml", loopKML), logger.Discard())
	require.NoError(t, err)

	out, err := Save(doc.Root, filepath.Join(dir, "copy.kml"), tree.WriteOptions{Indent: "  "}, logger.Discard())
	require.NoError(t, err)

	again, err := Load(out, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, string(tree.Serialize(doc.Root)), string(tree.Serialize(again.Root)))
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "a_b", SafeName("a/b"))
	assert.Equal(t, "track", SafeName("  "))
	assert.Equal(t, "track", SafeName(".."))
	assert.Equal(t, "Morning Ride", SafeName("Morning Ride"))
}
