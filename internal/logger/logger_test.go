package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogger_Helpers(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Level: log.InfoLevel})

	l.FileLoaded("track.gpx", "GPX", 3)
	l.FileCreated("track.kml")
	l.NodesFound("LineString", 2)
	l.OperationFailed("reverse", "track.kml", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"file loaded", "track.gpx", "file created", "LineString", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Level: log.WarnLevel})

	l.FileCreated("quiet.kml")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}

	l.StyleResolved("track", "ff123456", "")
	if !strings.Contains(buf.String(), "color not in palette") {
		t.Errorf("expected palette warning, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	if lvl != log.DebugLevel {
		t.Errorf("expected debug level, got %v", lvl)
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}
