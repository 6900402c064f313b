// Package document loads track files from disk and writes results back
// beside them without ever replacing an existing file.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/clems4ever/kmltools/internal/logger"
	"github.com/clems4ever/kmltools/internal/tree"
)

// Format is the surface encoding of a document.
type Format int

const (
	KML Format = iota
	GPX
)

func (f Format) String() string {
	switch f {
	case KML:
		return "KML"
	case GPX:
		return "GPX"
	}
	return "<unknown format>"
}

// Ext returns the file extension of f, dot included.
func (f Format) Ext() string {
	return "." + strings.ToLower(f.String())
}

// FormatFromPath detects the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".kml":
		return KML, nil
	case ".gpx":
		return GPX, nil
	}
	return 0, &UnsupportedFormatError{Path: path, Ext: strings.TrimPrefix(ext, ".")}
}

var (
	rootSelectors = map[Format]*xpath.Expr{
		KML: xpath.MustCompile("/*[local-name()='kml']"),
		GPX: xpath.MustCompile("/*[local-name()='gpx']"),
	}
	featureCounters = map[Format]*xpath.Expr{
		KML: xpath.MustCompile("count(//*[local-name()='Placemark'])"),
		GPX: xpath.MustCompile("count(//*[local-name()='trk'] | //*[local-name()='wpt'])"),
	}
)

// Document is one parsed input file.
type Document struct {
	Path   string
	Format Format
	Root   *tree.Node
}

// Base returns the file name without directory or extension.
func (d *Document) Base() string {
	return strings.TrimSuffix(filepath.Base(d.Path), filepath.Ext(d.Path))
}

// Dir returns the directory holding the file.
func (d *Document) Dir() string {
	return filepath.Dir(d.Path)
}

// Load reads and parses the file at path. The root element must match the
// format the extension announces.
func Load(path string, log *logger.Logger) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	dom, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &tree.ParseError{Source: path, Err: err}
	}
	if xmlquery.QuerySelector(dom, rootSelectors[format]) == nil {
		return nil, fmt.Errorf("%s: %w", path, &tree.MissingFieldError{Field: strings.ToLower(format.String())})
	}

	root, err := tree.FromDOM(dom)
	if err != nil {
		var perr *tree.ParseError
		if errors.As(err, &perr) {
			perr.Source = path
		}
		return nil, err
	}

	features := 0
	if n, ok := featureCounters[format].Evaluate(xmlquery.CreateXPathNavigator(dom)).(float64); ok {
		features = int(n)
	}
	log.FileLoaded(path, format.String(), features)

	return &Document{Path: path, Format: format, Root: root}, nil
}
