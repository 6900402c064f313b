package track

import (
	"errors"
	"testing"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []Point
		wantErr bool
	}{
		{
			name:    "two points",
			payload: "1,2,0 3,4,0",
			want:    []Point{{"1", "2", "0"}, {"3", "4", "0"}},
		},
		{
			name:    "precision kept verbatim",
			payload: "\n\t-3.70380000,40.41680,657.250\n",
			want:    []Point{{"-3.70380000", "40.41680", "657.250"}},
		},
		{
			name:    "empty payload",
			payload: "   ",
			want:    []Point{},
		},
		{
			name:    "two fields",
			payload: "1,2",
			wantErr: true,
		},
		{
			name:    "four fields",
			payload: "1,2,3 1,2,3,4",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinates(tt.payload)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedCoordinate) {
					t.Fatalf("expected malformed coordinate error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoordinates failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d points, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("point %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestFormatCoordinates(t *testing.T) {
	pts := []Point{{"1", "2", "0"}, {"3", "4", "0"}}
	if got := FormatCoordinates(pts); got != "1,2,0 3,4,0" {
		t.Errorf("unexpected payload %q", got)
	}
	if got := FormatCoordinates(nil); got != "" {
		t.Errorf("expected empty payload, got %q", got)
	}
}

func TestReverseCoordinates(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1,1,0 2,2,0 3,3,0", "3,3,0 2,2,0 1,1,0"},
		{"1,1,0", "1,1,0"},
		{"", ""},
		{" a  b\n", "b a"},
	}
	for _, tt := range tests {
		if got := ReverseCoordinates(tt.in); got != tt.want {
			t.Errorf("ReverseCoordinates(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := ReverseCoordinates(ReverseCoordinates(tt.in)); got != ReverseCoordinates(ReverseCoordinates(got)) {
			t.Errorf("double reversal of %q is not stable", tt.in)
		}
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain   words", "plain words"},
		{"<p>one</p><p>two <b>bold</b></p>", "one\ntwo bold"},
		{"line<br>break", "line\nbreak"},
		{"<table><tr><td>a</td><td>b</td></tr></table>", "a b"},
		{"fish &amp; chips<script>x()</script>", "fish & chips"},
	}
	for _, tt := range tests {
		if got := PlainText(tt.in); got != tt.want {
			t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
